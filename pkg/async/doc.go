// Package async provides small future helpers built on goroutines and generics.
//
// Async runs a function on its own goroutine and returns a Future for its
// result. The context is checked before starting, so a cancelled caller
// never spawns work.
//
//	en := async.Async(ctx, "en", fetchDictionary)
//	sw := async.Async(ctx, "sw", fetchDictionary)
//
//	docs, err := async.WaitAll(en, sw)
//	if err != nil {
//		// at least one fetch failed; errors are joined
//	}
//
// AwaitWithTimeout returns ErrTimeout when the computation takes longer than
// the given duration; the goroutine keeps running until its function returns.
package async
