// Package beautydex embeds the beauty product discovery assistant in a Go program.
//
// The client classifies free-form chat queries (Turkish or English), fetches
// matching products from a catalog and renders the Turkish chat reply.
// The catalog is an in-memory product list, a Redis index or a Postgres table.
//
//	client, _ := beautydex.New(ctx, beautydex.WithProducts(products...))
//	defer client.Close()
//
//	ans := client.Ask(ctx, "en iyi ürünler hangileri?")
//	fmt.Println(ans.Text)
//
//	related, _ := client.Recommend(ctx, "rj-001", 3)
package beautydex
