package credentials

import (
	"errors"
	"os"
)

// Source identifies where a token came from.
type Source string

// Token sources, in lookup order.
const (
	SourceEnv   Source = "env"
	SourceStore Source = "store"
	SourceNone  Source = "none"
)

// TokenSource reads the jobs API token from the environment or a Store.
// It satisfies jobs.TokenSource.
type TokenSource struct {
	store     *Store
	lookupEnv func(string) (string, bool)
}

// NewTokenSource returns a TokenSource backed by store.
func NewTokenSource(store *Store) *TokenSource {
	return &TokenSource{store: store, lookupEnv: os.LookupEnv}
}

// Token returns the current token, or "" when none is configured. Read
// errors are treated as no token; Lookup reports them.
func (ts *TokenSource) Token() string {
	tok, _, _ := ts.Lookup()
	return tok
}

// Lookup returns the token and its source. $JOBFOCUS_JWT_TOKEN wins over
// the stored value, even when set to "".
func (ts *TokenSource) Lookup() (string, Source, error) {
	if v, ok := ts.lookupEnv(EnvJWTToken); ok {
		return v, SourceEnv, nil
	}
	if ts.store == nil {
		return "", SourceNone, nil
	}
	tok, err := ts.store.Get(KeyJWTToken)
	if errors.Is(err, ErrNotFound) {
		return "", SourceNone, nil
	}
	if err != nil {
		return "", SourceNone, err
	}
	return tok, SourceStore, nil
}
