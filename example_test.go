package exprql_test

import (
	"fmt"
	"time"

	"github.com/zoobzio/exprql"
)

func ExampleSelect() {
	users := exprql.T("users")
	id, name, age := users.Field("id"), users.Field("name"), users.Field("age")

	query := exprql.Select(id, name).
		From(users).
		Where(age.Ge(exprql.P("minAge"))).
		And(name.Like("J%")).
		OrderBy(name.Asc()).
		Limit(10).
		Params(exprql.Params{"minAge": 18})

	fmt.Println(query.MustRender(exprql.SQLite))

	// Output:
	// SELECT users.id, users.name FROM users WHERE ((users.age >= 18) AND (users.name LIKE 'J%')) ORDER BY users.name ASC LIMIT 10
}

func ExampleUpdate() {
	users := exprql.T("users")

	query := exprql.Update(users).
		Set(users.Field("name"), "O'Brien").
		Set(users.Field("visits"), exprql.Add(users.Field("visits"), 1)).
		Where(users.Field("id").Eq(4))

	fmt.Println(query.MustRender(exprql.Postgres))
	fmt.Println(query.MustRender(exprql.SQLite))

	// Output:
	// UPDATE users SET name = 'O\'Brien', visits = (users.visits + 1) WHERE (users.id = 4)
	// UPDATE users SET name = 'O''Brien', visits = (users.visits + 1) WHERE (users.id = 4)
}

func ExampleDelete() {
	sessions := exprql.T("sessions")

	query := exprql.Delete().
		From(sessions).
		Where(sessions.Field("user_id").IsNull())

	fmt.Println(query.MustRender(exprql.MySQL))

	// Output:
	// DELETE FROM sessions WHERE (sessions.user_id IS NULL)
}

func ExampleAnd() {
	t := exprql.T("t")
	a, b, c := t.Field("a").Eq(1), t.Field("b").Eq(2), t.Field("c").Eq(3)

	fmt.Println(exprql.And(exprql.And(a, b), c).MustRender(exprql.SQLite, nil))
	fmt.Println(exprql.Or(exprql.And(a, b), exprql.Not(c)).MustRender(exprql.SQLite, nil))

	// Output:
	// ((t.a = 1) AND (t.b = 2) AND (t.c = 3))
	// (((t.a = 1) AND (t.b = 2)) OR NOT(t.c = 3))
}

func ExampleRenderLiteral() {
	when := time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)

	for _, v := range []any{true, "it's", when, 90 * time.Minute, []int{1, 2}, nil} {
		pg, _ := exprql.RenderLiteral(v, exprql.Postgres)
		lite, _ := exprql.RenderLiteral(v, exprql.SQLite)
		fmt.Printf("%s | %s\n", pg, lite)
	}

	// Output:
	// 't' | 1
	// 'it\'s' | 'it''s'
	// '2024-03-09 14:05:00' | '2024-03-09 14:05:00'
	// INTERVAL '0 days 5400 seconds' | INTERVAL '0 days 5400 seconds'
	// (1, 2) | (1, 2)
	// NULL | NULL
}
