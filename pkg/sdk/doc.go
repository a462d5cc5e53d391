// Package docdex provides an embeddable Go client for the docdex document
// retrieval engine backed by Redis with the JSON module.
//
// Documents are plain-text and owner-scoped. Search runs in one of three
// modes: keyword (literal matching), semantic (embedding cosine similarity)
// or hybrid (both, with fused scores).
//
//	client, _ := docdex.New(ctx,
//	    docdex.WithRedis("localhost:6379", ""),
//	    docdex.WithOpenAI(os.Getenv("OPENAI_API_KEY")),
//	)
//	defer client.Close()
//
//	client.Documents("alice").Upsert(ctx, docdex.Document{
//	    ID:      "notes-1",
//	    Content: "The quick brown fox jumps over the lazy dog",
//	})
//	out, _ := client.Search("alice").Hybrid(ctx, "fast animals")
//
// Keyword mode needs no embedder. Semantic and hybrid modes require one,
// configured via WithOpenAI or WithEmbedder.
package docdex
