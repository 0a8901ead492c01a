package integration

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/zoobzio/exprql"
	"github.com/zoobzio/exprql/conn"
	exprqltest "github.com/zoobzio/exprql/testing"
)

var (
	users     = exprql.T("users")
	usersID   = users.Field("id")
	usersName = users.Field("name")
	usersLog  = users.Field("login")
	usersAge  = users.Field("age")
	usersOn   = users.Field("active")

	posts       = exprql.T("posts")
	postsID     = posts.Field("id")
	postsUserID = posts.Field("user_id")
	postsTitle  = posts.Field("title")
)

// trickyName exercises quote and backslash escaping on the way in and out.
const trickyName = `O'Brien \ Jr`

// boolType returns the column type used for the active flag.
func boolType(d exprql.Dialect) string {
	switch {
	case d == exprql.SQLite:
		return "INTEGER"
	case d == exprql.MSSQL:
		return "BIT"
	}
	return "BOOLEAN"
}

// seed recreates the users and posts tables and fills them with fixtures.
// Inserted values are rendered through RenderLiteral for the connection's
// dialect.
func seed(t *testing.T, db *conn.DB) {
	t.Helper()

	ctx := context.Background()
	d := db.Dialect()

	exec := func(query string) {
		t.Helper()
		if _, err := db.Exec(ctx, query); err != nil {
			t.Fatalf("Failed to execute SQL: %v\nSQL: %s", err, query)
		}
	}
	lit := func(v any) string {
		t.Helper()
		s, err := exprql.RenderLiteral(v, d)
		exprqltest.AssertNoError(t, err)
		return s
	}

	exec("DROP TABLE IF EXISTS posts")
	exec("DROP TABLE IF EXISTS users")
	exec(`CREATE TABLE users (
		id INTEGER PRIMARY KEY,
		login VARCHAR(64) NOT NULL,
		name VARCHAR(64) NULL,
		age INTEGER NOT NULL,
		active ` + boolType(d) + ` NOT NULL
	)`)
	exec(`CREATE TABLE posts (
		id INTEGER PRIMARY KEY,
		user_id INTEGER NOT NULL,
		title VARCHAR(128) NOT NULL
	)`)

	fixtures := []struct {
		id     int
		login  string
		name   any
		age    int
		active bool
	}{
		{1, "alice", "Alice", 30, true},
		{2, "bob", nil, 17, false},
		{3, "carol", trickyName, 45, true},
	}
	for _, f := range fixtures {
		exec(fmt.Sprintf("INSERT INTO users (id, login, name, age, active) VALUES (%s, %s, %s, %s, %s)",
			lit(f.id), lit(f.login), lit(f.name), lit(f.age), lit(f.active)))
	}

	for i, p := range []struct {
		userID int
		title  string
	}{
		{1, "first"},
		{1, "second"},
		{2, "hello"},
	} {
		exec(fmt.Sprintf("INSERT INTO posts (id, user_id, title) VALUES (%s, %s, %s)",
			lit(i+1), lit(p.userID), lit(p.title)))
	}
}

// collect executes s on db and returns field from every row as text.
func collect(t *testing.T, db *conn.DB, s *exprql.Statement, field string) []string {
	t.Helper()

	rows, err := s.Execute(context.Background(), db)
	if err != nil {
		sql, _ := s.Render(db.Dialect())
		t.Fatalf("Execute failed: %v\nSQL: %s", err, sql)
	}
	defer rows.Close()

	var out []string
	for row := range rows.All() {
		v, ok := row.Get(field)
		if !ok {
			t.Fatalf("row has no field %q (names: %v)", field, rows.Projection().Names())
		}
		out = append(out, fmt.Sprint(v))
	}
	exprqltest.AssertNoError(t, rows.Err())
	return out
}

func assertValues(t *testing.T, got []string, want ...string) {
	t.Helper()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("values = %v, want %v", got, want)
	}
}

// runSuite runs the shared statement scenarios against db.
func runSuite(t *testing.T, db *conn.DB) {
	t.Helper()

	d := db.Dialect()
	ctx := context.Background()

	t.Run("select by param", func(t *testing.T) {
		seed(t, db)
		s := exprql.Select(usersLog).From(users).
			Where(usersID.Eq(exprql.P("id"))).
			Params(exprql.Params{"id": 1})
		assertValues(t, collect(t, db, s, "login"), "alice")
	})

	t.Run("and chain", func(t *testing.T) {
		seed(t, db)
		s := exprql.Select(usersID).From(users).
			Where(usersAge.Gt(18), usersOn.Eq(true)).
			OrderBy(usersID.Asc())
		assertValues(t, collect(t, db, s, "id"), "1", "3")
	})

	t.Run("or", func(t *testing.T) {
		seed(t, db)
		s := exprql.Select(usersID).From(users).
			Where(exprql.Or(usersID.Eq(1), usersLog.Eq("bob"))).
			OrderBy(usersID.Asc())
		assertValues(t, collect(t, db, s, "id"), "1", "2")
	})

	t.Run("not", func(t *testing.T) {
		seed(t, db)
		s := exprql.Select(usersID).From(users).Where(exprql.Not(usersOn.Eq(true)))
		assertValues(t, collect(t, db, s, "id"), "2")
	})

	t.Run("is null", func(t *testing.T) {
		seed(t, db)
		s := exprql.Select(usersLog).From(users).Where(usersName.IsNull())
		assertValues(t, collect(t, db, s, "login"), "bob")

		s = exprql.Select(usersID).From(users).Where(usersName.IsNotNull()).OrderBy(usersID.Asc())
		assertValues(t, collect(t, db, s, "id"), "1", "3")
	})

	t.Run("in and like", func(t *testing.T) {
		seed(t, db)
		s := exprql.Select(usersLog).From(users).Where(usersID.In([]int{1, 3})).OrderBy(usersID.Asc())
		assertValues(t, collect(t, db, s, "login"), "alice", "carol")

		s = exprql.Select(usersLog).From(users).Where(usersLog.Like("a%"))
		assertValues(t, collect(t, db, s, "login"), "alice")
	})

	t.Run("arithmetic", func(t *testing.T) {
		seed(t, db)
		s := exprql.Select(usersLog).From(users).Where(exprql.Add(usersAge, 1).Gt(31))
		assertValues(t, collect(t, db, s, "login"), "carol")
	})

	t.Run("escaped text round trip", func(t *testing.T) {
		seed(t, db)
		s := exprql.Select(usersID, usersName).From(users).
			Where(usersName.Eq(exprql.P("name"))).
			Params(exprql.Params{"name": trickyName})
		assertValues(t, collect(t, db, s, "id"), "3")
		assertValues(t, collect(t, db, s, "name"), trickyName)
	})

	t.Run("join with qualified names", func(t *testing.T) {
		seed(t, db)
		s := exprql.Select(usersLog, postsTitle, postsID).From(users).
			InnerJoin(posts, postsUserID.Eq(usersID)).
			Where(usersID.Eq(1)).
			OrderBy(postsID.Asc())
		assertValues(t, collect(t, db, s, "users__login"), "alice", "alice")
		assertValues(t, collect(t, db, s, "title"), "first", "second")
		assertValues(t, collect(t, db, s, "posts__id"), "1", "2")
	})

	t.Run("group by having", func(t *testing.T) {
		seed(t, db)
		s := exprql.Select(usersLog, exprql.CountAll().As("n")).From(users).
			InnerJoin(posts, postsUserID.Eq(usersID)).
			GroupBy(usersLog).
			Having(exprql.CountAll().Gt(1))
		assertValues(t, collect(t, db, s, "login"), "alice")
		assertValues(t, collect(t, db, s, "n"), "2")
	})

	t.Run("schema expansion", func(t *testing.T) {
		seed(t, db)
		s := exprql.Select(users).From(users).
			Where(usersID.Eq(2)).
			WithSchema(exprqltest.TestSchema(t))
		assertValues(t, collect(t, db, s, "login"), "bob")
		assertValues(t, collect(t, db, s, "users__age"), "17")
	})

	t.Run("update", func(t *testing.T) {
		seed(t, db)
		n, err := db.ExecStatement(ctx, exprql.Update(users).
			Set(usersAge, exprql.Add(usersAge, 1)).
			Set(usersOn, false).
			Where(usersAge.Ge(30)))
		exprqltest.AssertNoError(t, err)
		if n != 2 {
			t.Errorf("rows affected = %d, want 2", n)
		}

		s := exprql.Select(usersAge).From(users).OrderBy(usersID.Asc())
		assertValues(t, collect(t, db, s, "age"), "31", "17", "46")
	})

	t.Run("delete", func(t *testing.T) {
		seed(t, db)
		n, err := db.ExecStatement(ctx, exprql.Delete().From(posts).Where(postsUserID.Eq(1)))
		exprqltest.AssertNoError(t, err)
		if n != 2 {
			t.Errorf("rows affected = %d, want 2", n)
		}

		s := exprql.Select(postsTitle).From(posts)
		assertValues(t, collect(t, db, s, "title"), "hello")
	})

	t.Run("limit offset", func(t *testing.T) {
		if d == exprql.MSSQL {
			t.Skip("mssql has no LIMIT clause")
		}
		seed(t, db)
		s := exprql.Select(usersID).From(users).OrderBy(usersID.Asc()).Limit(2).Offset(1)
		assertValues(t, collect(t, db, s, "id"), "2", "3")
	})
}
