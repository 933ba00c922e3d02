// Package store holds the boundary helpers for the external document store:
// cancelable realtime subscriptions and error classification. Business logic
// never talks to the SDK iterators directly; it receives plain snapshots and
// decodes them synchronously.
package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Unsubscribe tears down a subscription. Safe to call more than once; returns
// after the delivery goroutine has exited, so no callback fires afterwards.
type Unsubscribe func()

// Subscribe watches a query and invokes onData with every snapshot's documents.
// Delivery stops when the returned Unsubscribe runs, the parent context ends,
// or the watch fails with a non-cancellation error (reported via onError).
func Subscribe(ctx context.Context, query firestore.Query, onData func(docs []*firestore.DocumentSnapshot), onError func(err error)) Unsubscribe {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		it := query.Snapshots(ctx)
		defer it.Stop()

		for {
			snap, err := it.Next()
			if err != nil {
				if !isCanceled(err) && onError != nil {
					onError(err)
				}
				return
			}
			docs, err := snap.Documents.GetAll()
			if err != nil {
				if !isCanceled(err) && onError != nil {
					onError(err)
				}
				return
			}
			onData(docs)
		}
	}()

	return func() {
		cancel()
		<-done
	}
}

// SubscribeDoc watches a single document. onData receives nil data for a
// snapshot of a document that does not exist, matching the read contract's
// "missing means empty" rule.
func SubscribeDoc(ctx context.Context, ref *firestore.DocumentRef, onData func(snap *firestore.DocumentSnapshot), onError func(err error)) Unsubscribe {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		it := ref.Snapshots(ctx)
		defer it.Stop()

		for {
			snap, err := it.Next()
			if err != nil {
				if !isCanceled(err) && onError != nil {
					onError(err)
				}
				return
			}
			onData(snap)
		}
	}()

	return func() {
		cancel()
		<-done
	}
}

func isCanceled(err error) bool {
	if err == context.Canceled || err == context.DeadlineExceeded {
		return true
	}
	return status.Code(err) == codes.Canceled
}
