package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// FixtureTopic, FixtureUser, FixtureArticle and FixtureComment describe seed rows.
type FixtureTopic struct {
	Slug        string
	Description string
}

type FixtureUser struct {
	Username  string
	Name      string
	AvatarURL string
}

type FixtureArticle struct {
	Title     string
	Topic     string
	Author    string
	Body      string
	CreatedAt time.Time
	Votes     int
}

// FixtureComment references its article by 1-based position in
// Fixtures.Articles, not by stored id.
type FixtureComment struct {
	Article   int
	Author    string
	Body      string
	Votes     int
	CreatedAt time.Time
}

// Fixtures is a complete seed data set.
type Fixtures struct {
	Topics   []FixtureTopic
	Users    []FixtureUser
	Articles []FixtureArticle
	Comments []FixtureComment
}

// Seed replaces every row in the four tables with f inside one transaction.
// On a freshly migrated database article and comment ids follow fixture order
// starting at 1.
func Seed(ctx context.Context, conn *sqlx.DB, f Fixtures) error {
	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"comments", "articles", "users", "topics"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, t := range f.Topics {
		if _, err := tx.ExecContext(ctx, tx.Rebind(`INSERT INTO topics (slug, description) VALUES (?, ?)`),
			t.Slug, t.Description); err != nil {
			return fmt.Errorf("seed topic %q: %w", t.Slug, err)
		}
	}

	for _, u := range f.Users {
		if _, err := tx.ExecContext(ctx, tx.Rebind(`INSERT INTO users (username, name, avatar_url) VALUES (?, ?, ?)`),
			u.Username, u.Name, u.AvatarURL); err != nil {
			return fmt.Errorf("seed user %q: %w", u.Username, err)
		}
	}

	articleIDs := make([]int64, len(f.Articles))
	for i, a := range f.Articles {
		id, err := InsertID(ctx, tx, `
			INSERT INTO articles (title, topic, author, body, created_at, votes)
			VALUES (?, ?, ?, ?, ?, ?)`, "article_id",
			a.Title, a.Topic, a.Author, a.Body, a.CreatedAt.UTC(), a.Votes)
		if err != nil {
			return fmt.Errorf("seed article %q: %w", a.Title, err)
		}
		articleIDs[i] = id
	}

	for i, c := range f.Comments {
		if c.Article < 1 || c.Article > len(articleIDs) {
			return fmt.Errorf("seed comment %d: article position %d out of range", i+1, c.Article)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(`
			INSERT INTO comments (article_id, author, body, votes, created_at)
			VALUES (?, ?, ?, ?, ?)`),
			articleIDs[c.Article-1], c.Author, c.Body, c.Votes, c.CreatedAt.UTC()); err != nil {
			return fmt.Errorf("seed comment %d: %w", i+1, err)
		}
	}

	return tx.Commit()
}

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// DevFixtures is the development and test data set: three topics (paper has
// no articles), four users (lurker has written nothing), thirteen articles
// and eighteen comments. Article 2 has no comments; articles 12 and 13 share
// a created_at.
func DevFixtures() Fixtures {
	return Fixtures{
		Topics: []FixtureTopic{
			{Slug: "mitch", Description: "The man, the Mitch, the legend"},
			{Slug: "cats", Description: "Not dogs"},
			{Slug: "paper", Description: "what books are made of"},
		},
		Users: []FixtureUser{
			{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
			{Username: "icellusedkars", Name: "sam", AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
			{Username: "rogersop", Name: "paul", AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
			{Username: "lurker", Name: "do_nothing", AvatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"},
		},
		Articles: []FixtureArticle{
			{Title: "Living in the shadow of a great man", Topic: "mitch", Author: "butter_bridge", Body: "I find this existence challenging", CreatedAt: at("2020-07-09T20:11:00Z"), Votes: 100},
			{Title: "Sony Vaio; or, The Laptop", Topic: "mitch", Author: "icellusedkars", Body: "Call me Mitchell. Some years ago I thought I would buy a laptop.", CreatedAt: at("2020-10-16T05:03:00Z")},
			{Title: "Eight pug gifs that remind me of mitch", Topic: "mitch", Author: "icellusedkars", Body: "some gifs", CreatedAt: at("2020-11-03T09:12:00Z")},
			{Title: "Student SUES Mitch!", Topic: "mitch", Author: "rogersop", Body: "We all love Mitch and his wonderful, unique typing style.", CreatedAt: at("2020-05-06T01:14:00Z")},
			{Title: "UNCOVERED: catspiracy to bring down democracy", Topic: "cats", Author: "rogersop", Body: "Bastet walks amongst us, and the cats are taking arms!", CreatedAt: at("2020-08-03T13:14:00Z")},
			{Title: "A", Topic: "mitch", Author: "icellusedkars", Body: "Delicious tin of cat food", CreatedAt: at("2020-10-18T01:00:00Z")},
			{Title: "Z", Topic: "mitch", Author: "icellusedkars", Body: "I was hungry.", CreatedAt: at("2020-01-07T14:08:00Z")},
			{Title: "Does Mitch predate civilisation?", Topic: "mitch", Author: "icellusedkars", Body: "Archaeologists have uncovered a gigantic statue from the dawn of humanity.", CreatedAt: at("2020-04-17T01:08:00Z")},
			{Title: "They're not exactly dogs, are they?", Topic: "mitch", Author: "butter_bridge", Body: "Well? Think about it.", CreatedAt: at("2020-06-06T09:10:00Z")},
			{Title: "Seven inspirational thought leaders from Manchester UK", Topic: "mitch", Author: "rogersop", Body: "Who are we kidding, there is only one, and it's Mitch!", CreatedAt: at("2020-05-14T04:15:00Z")},
			{Title: "Am I a cat?", Topic: "mitch", Author: "icellusedkars", Body: "Having run out of ideas for articles, I am staring at the wall.", CreatedAt: at("2020-01-15T22:21:00Z")},
			{Title: "Moustache", Topic: "mitch", Author: "butter_bridge", Body: "Have you seen the size of that thing?", CreatedAt: at("2020-10-11T11:24:00Z")},
			{Title: "Another article about Mitch", Topic: "mitch", Author: "butter_bridge", Body: "There will never be enough articles about Mitch!", CreatedAt: at("2020-10-11T11:24:00Z")},
		},
		Comments: []FixtureComment{
			{Article: 9, Author: "butter_bridge", Body: "Oh, I've got compassion running out of my nose, pal!", Votes: 16, CreatedAt: at("2020-04-06T12:17:00Z")},
			{Article: 1, Author: "butter_bridge", Body: "The beautiful thing about treasure is that it exists.", Votes: 14, CreatedAt: at("2020-10-31T03:03:00Z")},
			{Article: 1, Author: "icellusedkars", Body: "Replacing the quiet elegance of the dark suit and tie with the casual indifference of these muted earth tones.", Votes: 100, CreatedAt: at("2020-03-01T01:13:00Z")},
			{Article: 1, Author: "icellusedkars", Body: " I carry a log — yes. Is it funny to you? It is not to me.", Votes: -100, CreatedAt: at("2020-02-23T12:01:00Z")},
			{Article: 1, Author: "icellusedkars", Body: "I hate streaming noses", Votes: 0, CreatedAt: at("2020-11-03T21:00:00Z")},
			{Article: 1, Author: "icellusedkars", Body: "I hate streaming eyes even more", Votes: 0, CreatedAt: at("2020-04-11T21:02:00Z")},
			{Article: 1, Author: "icellusedkars", Body: "Lobster pot", Votes: 0, CreatedAt: at("2020-05-15T20:19:00Z")},
			{Article: 1, Author: "icellusedkars", Body: "Delicious crackerbreads", Votes: 0, CreatedAt: at("2020-04-14T20:19:00Z")},
			{Article: 1, Author: "icellusedkars", Body: "Superficially charming", Votes: 0, CreatedAt: at("2020-01-01T03:08:00Z")},
			{Article: 3, Author: "icellusedkars", Body: "git push origin master", Votes: 0, CreatedAt: at("2020-06-20T07:24:00Z")},
			{Article: 3, Author: "icellusedkars", Body: "Ambidextrous marsupial", Votes: 0, CreatedAt: at("2020-09-19T23:10:00Z")},
			{Article: 1, Author: "icellusedkars", Body: "Massive intercranial brain haemorrhage", Votes: 0, CreatedAt: at("2020-03-02T07:10:00Z")},
			{Article: 1, Author: "icellusedkars", Body: "Fruit pastilles", Votes: 0, CreatedAt: at("2020-06-15T10:25:00Z")},
			{Article: 5, Author: "icellusedkars", Body: "What do you see? I have no idea where this will lead us.", Votes: 16, CreatedAt: at("2020-06-09T05:00:00Z")},
			{Article: 5, Author: "icellusedkars", Body: "I am 100% sure that we're not completely sure.", Votes: 1, CreatedAt: at("2020-11-24T00:08:00Z")},
			{Article: 6, Author: "butter_bridge", Body: "This is a bad article name", Votes: 1, CreatedAt: at("2020-10-11T15:23:00Z")},
			{Article: 9, Author: "icellusedkars", Body: "The owls are not what they seem.", Votes: 20, CreatedAt: at("2020-03-14T17:02:00Z")},
			{Article: 1, Author: "butter_bridge", Body: "This morning, I showered for nine minutes.", Votes: 16, CreatedAt: at("2020-07-21T00:20:00Z")},
		},
	}
}
