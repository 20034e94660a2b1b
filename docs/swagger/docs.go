// Package swagger registers the OpenAPI 2.0 document for the JSON API with
// swag, for serving at /api/docs.
package swagger

import (
	"github.com/swaggo/swag"

	"github.com/joestump/news-api/internal/build"
)

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "tags": [
                    "meta"
                ],
                "summary": "Endpoint catalog",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.EndpointsResponse"
                        }
                    }
                }
            }
        },
        "/topics": {
            "get": {
                "tags": [
                    "topics"
                ],
                "summary": "List topics",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.TopicListResponse"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "topics"
                ],
                "summary": "Create a topic",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/api.TopicListResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid Input",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "description": "request body",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.CreateTopicRequest"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/users": {
            "get": {
                "tags": [
                    "users"
                ],
                "summary": "List users",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.UserListResponse"
                        }
                    }
                }
            }
        },
        "/users/{username}": {
            "get": {
                "tags": [
                    "users"
                ],
                "summary": "Get a user",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.UserListResponse"
                        }
                    },
                    "404": {
                        "description": "User Not Found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "username",
                        "name": "username",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/articles": {
            "get": {
                "tags": [
                    "articles"
                ],
                "summary": "List articles",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.ArticleListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request: Invalid Query, Bad Request: Invalid Order/Sortby Query or Bad Request: Topic Does Not Exist",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found (page past the end)",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "topic slug; must exist",
                        "name": "topic",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "sort column (default created_at)",
                        "name": "sortBy",
                        "in": "query",
                        "enum": [
                            "article_id",
                            "title",
                            "topic",
                            "author",
                            "body",
                            "created_at",
                            "votes",
                            "comment_count"
                        ]
                    },
                    {
                        "type": "string",
                        "description": "sort direction, case-insensitive (default desc)",
                        "name": "order",
                        "in": "query",
                        "enum": [
                            "asc",
                            "desc"
                        ]
                    },
                    {
                        "type": "integer",
                        "description": "page size (default 10)",
                        "name": "limit",
                        "in": "query",
                        "minimum": 1
                    },
                    {
                        "type": "integer",
                        "description": "1-based page number",
                        "name": "p",
                        "in": "query",
                        "minimum": 1
                    }
                ]
            },
            "post": {
                "tags": [
                    "articles"
                ],
                "summary": "Create an article",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/api.ArticleListResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid Input",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "description": "request body",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.CreateArticleRequest"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/articles/{article_id}": {
            "get": {
                "tags": [
                    "articles"
                ],
                "summary": "Get an article",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.ArticleListResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid Input",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "No Article With That ID",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "integer",
                        "description": "article id",
                        "name": "article_id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "patch": {
                "tags": [
                    "articles"
                ],
                "summary": "Add to an article's votes",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.ArticleListResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid Input",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "No Article With That ID",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "integer",
                        "description": "article id",
                        "name": "article_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "request body",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.VoteRequest"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ]
            },
            "delete": {
                "tags": [
                    "articles"
                ],
                "summary": "Delete an article and its comments",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Invalid Input",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "article_id Not Found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "integer",
                        "description": "article id",
                        "name": "article_id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/articles/{article_id}/comments": {
            "get": {
                "tags": [
                    "comments"
                ],
                "summary": "List an article's comments",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.CommentListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request: Invalid Query or Invalid Input",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "article_id Not Found or Not Found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "integer",
                        "description": "article id",
                        "name": "article_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "page size (default 10)",
                        "name": "limit",
                        "in": "query",
                        "minimum": 1
                    },
                    {
                        "type": "integer",
                        "description": "1-based page number",
                        "name": "p",
                        "in": "query",
                        "minimum": 1
                    }
                ]
            },
            "post": {
                "tags": [
                    "comments"
                ],
                "summary": "Comment on an article",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/api.CommentListResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid Input",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "article_id Not Found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "integer",
                        "description": "article id",
                        "name": "article_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "request body",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.CreateCommentRequest"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/comments/{comment_id}": {
            "patch": {
                "tags": [
                    "comments"
                ],
                "summary": "Add to a comment's votes",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.CommentListResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid Input",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "comment_id Not Found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "integer",
                        "description": "comment id",
                        "name": "comment_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "request body",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.VoteRequest"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ]
            },
            "delete": {
                "tags": [
                    "comments"
                ],
                "summary": "Delete a comment",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Invalid Input",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "comment_id Not Found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "integer",
                        "description": "comment id",
                        "name": "comment_id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        }
    },
    "definitions": {
        "api.ErrorResponse": {
            "type": "object",
            "properties": {
                "msg": {
                    "type": "string"
                }
            }
        },
        "api.TopicResponse": {
            "type": "object",
            "properties": {
                "slug": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                }
            }
        },
        "api.TopicListResponse": {
            "type": "object",
            "properties": {
                "topics": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/api.TopicResponse"
                    }
                }
            }
        },
        "api.CreateTopicRequest": {
            "type": "object",
            "properties": {
                "slug": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                }
            },
            "required": [
                "slug",
                "description"
            ]
        },
        "api.UserResponse": {
            "type": "object",
            "properties": {
                "username": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "avatar_url": {
                    "type": "string"
                }
            }
        },
        "api.UserListResponse": {
            "type": "object",
            "properties": {
                "users": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/api.UserResponse"
                    }
                }
            }
        },
        "api.ArticleResponse": {
            "type": "object",
            "properties": {
                "article_id": {
                    "type": "integer"
                },
                "title": {
                    "type": "string"
                },
                "topic": {
                    "type": "string"
                },
                "author": {
                    "type": "string"
                },
                "body": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "votes": {
                    "type": "integer"
                },
                "comment_count": {
                    "type": "integer"
                },
                "total_count": {
                    "type": "integer"
                }
            }
        },
        "api.ArticleListResponse": {
            "type": "object",
            "properties": {
                "articles": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/api.ArticleResponse"
                    }
                }
            }
        },
        "api.CreateArticleRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "topic": {
                    "type": "string"
                },
                "author": {
                    "type": "string"
                },
                "body": {
                    "type": "string"
                }
            },
            "required": [
                "title",
                "topic",
                "author",
                "body"
            ]
        },
        "api.VoteRequest": {
            "type": "object",
            "properties": {
                "inc_votes": {
                    "type": "integer"
                }
            },
            "required": [
                "inc_votes"
            ]
        },
        "api.CommentResponse": {
            "type": "object",
            "properties": {
                "comment_id": {
                    "type": "integer"
                },
                "article_id": {
                    "type": "integer"
                },
                "author": {
                    "type": "string"
                },
                "body": {
                    "type": "string"
                },
                "votes": {
                    "type": "integer"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "total_count": {
                    "type": "integer"
                }
            }
        },
        "api.CommentListResponse": {
            "type": "object",
            "properties": {
                "comments": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/api.CommentResponse"
                    }
                }
            }
        },
        "api.CreateCommentRequest": {
            "type": "object",
            "properties": {
                "username": {
                    "type": "string"
                },
                "body": {
                    "type": "string"
                }
            },
            "required": [
                "username",
                "body"
            ]
        },
        "api.EndpointsResponse": {
            "type": "object",
            "properties": {
                "version": {
                    "type": "string"
                },
                "endpoints": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "object"
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          build.Version,
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "news-api",
	Description:      "Articles, comments, topics and users over JSON.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
