package ports

import "context"

// Page carries list-query parameters. NextToken is the opaque cursor returned
// by a previous page; Status filters on the record status attribute when set.
type Page struct {
	Limit     int32
	NextToken string
	Status    string
}

// Repository is the single-table access pattern every resource uses: point
// reads and writes by id, plus scans and secondary-index queries for lists.
// This is a port in hexagonal architecture - callers don't know about DynamoDB.
type Repository[T any] interface {
	// Put writes the full item, overwriting any existing one
	Put(ctx context.Context, item T) error

	// Get retrieves the item with the given id
	Get(ctx context.Context, id string) (T, error)

	// Update applies a partial attribute update to an existing item and
	// returns the new state
	Update(ctx context.Context, id string, set map[string]any) (T, error)

	// Delete removes the item
	Delete(ctx context.Context, id string) error

	// List scans the table one page at a time; the returned token is empty
	// when the table is exhausted
	List(ctx context.Context, p Page) ([]T, string, error)

	// QueryIndex queries a secondary index for items whose key attribute
	// equals value
	QueryIndex(ctx context.Context, index, attr, value string, p Page) ([]T, string, error)
}
