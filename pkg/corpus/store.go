// Package corpus persists named training corpora in SQLite as ordered
// token sequences. Only raw input tokens are stored, never a trained
// chain: callers load a corpus and train a fresh markov.Chain per use.
package corpus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// ErrNotFound is returned when a named corpus does not exist.
var ErrNotFound = errors.New("corpus: not found")

// CorpusInfo holds the essential metadata for a stored corpus.
type CorpusInfo struct {
	Id         int    `yaml:"id"`
	Name       string `yaml:"name"`
	TokenCount int    `yaml:"token_count"`
}

// SetupSchema initializes the necessary tables in the provided
// database. This function should be called once on a new database
// before any other operations are performed. It is idempotent and safe
// to call on an already-initialized database.
func SetupSchema(db *sql.DB) error {
	const (
		schemaCorpora = `
CREATE TABLE IF NOT EXISTS corpora (
    corpus_id INTEGER PRIMARY KEY,
    corpus_name TEXT NOT NULL UNIQUE,
    token_count INTEGER NOT NULL DEFAULT 0
);
`
		schemaTokens = `
CREATE TABLE IF NOT EXISTS corpus_tokens (
    corpus_id INTEGER NOT NULL,
    position INTEGER NOT NULL,
    token_text TEXT NOT NULL,
    PRIMARY KEY (corpus_id, position)
);
`
	)

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	if _, err = tx.Exec(schemaCorpora); err != nil {
		return fmt.Errorf("could not create corpora schema: %w", err)
	}
	if _, err = tx.Exec(schemaTokens); err != nil {
		return fmt.Errorf("could not create tokens schema: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}
	return nil
}

// Store manages stored corpora. It holds the database connection and
// prepared SQL statements for efficient database interaction.
type Store struct {
	db             *sql.DB
	stmtGetInfo    *sql.Stmt
	stmtGetInfos   *sql.Stmt
	stmtAddCorpus  *sql.Stmt
	stmtSetCount   *sql.Stmt
	stmtLoadTokens *sql.Stmt
	stmtTotalToks  *sql.Stmt
	stmtUniqueToks *sql.Stmt
	logger         *slog.Logger
}

// NewStore creates and returns a new Store over an initialized
// database. It pre-compiles all necessary SQL statements, returning an
// error if any preparation fails.
func NewStore(db *sql.DB) (*Store, error) {
	stmtGetInfo, err := db.Prepare(`SELECT corpus_id, token_count FROM corpora WHERE corpus_name = ?;`)
	if err != nil {
		return nil, err
	}

	stmtGetInfos, err := db.Prepare(`SELECT corpus_id, corpus_name, token_count FROM corpora;`)
	if err != nil {
		return nil, err
	}

	stmtAddCorpus, err := db.Prepare(`INSERT INTO corpora (corpus_name) VALUES (?);`)
	if err != nil {
		return nil, err
	}

	stmtSetCount, err := db.Prepare(`UPDATE corpora SET token_count = ? WHERE corpus_id = ?;`)
	if err != nil {
		return nil, err
	}

	stmtLoadTokens, err := db.Prepare(`SELECT token_text FROM corpus_tokens WHERE corpus_id = ? ORDER BY position;`)
	if err != nil {
		return nil, err
	}

	stmtTotalToks, err := db.Prepare(`SELECT COUNT(*) FROM corpus_tokens;`)
	if err != nil {
		return nil, err
	}

	stmtUniqueToks, err := db.Prepare(`SELECT COUNT(DISTINCT token_text) FROM corpus_tokens;`)
	if err != nil {
		return nil, err
	}

	return &Store{
		db:             db,
		stmtGetInfo:    stmtGetInfo,
		stmtGetInfos:   stmtGetInfos,
		stmtAddCorpus:  stmtAddCorpus,
		stmtSetCount:   stmtSetCount,
		stmtLoadTokens: stmtLoadTokens,
		stmtTotalToks:  stmtTotalToks,
		stmtUniqueToks: stmtUniqueToks,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, nil
}

// Close releases all prepared SQL statements held by the Store. It
// should be called when the Store is no longer needed to free up
// database resources.
func (s *Store) Close() {
	_ = s.stmtGetInfo.Close()
	_ = s.stmtGetInfos.Close()
	_ = s.stmtAddCorpus.Close()
	_ = s.stmtSetCount.Close()
	_ = s.stmtLoadTokens.Close()
	_ = s.stmtTotalToks.Close()
	_ = s.stmtUniqueToks.Close()
}

// SetLogger sets the logger for the Store. By default, all logs are discarded.
func (s *Store) SetLogger(logger *slog.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// Insert creates a new, empty corpus entry.
func (s *Store) Insert(ctx context.Context, name string) error {
	_, err := s.stmtAddCorpus.ExecContext(ctx, name)
	return err
}

// GetInfo retrieves the metadata for a single corpus specified by
// name. If multiple corpora are needed, GetInfos is more efficient.
func (s *Store) GetInfo(ctx context.Context, name string) (CorpusInfo, error) {
	var id, count int
	err := s.stmtGetInfo.QueryRowContext(ctx, name).Scan(&id, &count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CorpusInfo{}, fmt.Errorf("corpus %q: %w", name, ErrNotFound)
		}
		return CorpusInfo{}, err
	}
	return CorpusInfo{
		Id:         id,
		Name:       name,
		TokenCount: count,
	}, nil
}

// GetInfos retrieves metadata for all corpora currently in the
// database, returning them in a map keyed by corpus name.
func (s *Store) GetInfos(ctx context.Context) (map[string]CorpusInfo, error) {
	rows, err := s.stmtGetInfos.QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	infos := make(map[string]CorpusInfo)
	for rows.Next() {
		var info CorpusInfo
		if err = rows.Scan(&info.Id, &info.Name, &info.TokenCount); err != nil {
			return nil, err
		}
		infos[info.Name] = info
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return infos, nil
}

// Remove deletes a corpus and all of its tokens from the database. The
// operation is performed within a transaction.
func (s *Store) Remove(ctx context.Context, info CorpusInfo) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	if _, err = tx.ExecContext(ctx, "DELETE FROM corpus_tokens WHERE corpus_id = ?", info.Id); err != nil {
		return fmt.Errorf("failed to remove tokens for corpus %d: %w", info.Id, err)
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM corpora WHERE corpus_id = ?", info.Id); err != nil {
		return fmt.Errorf("failed to remove corpus %d: %w", info.Id, err)
	}

	s.logger.InfoContext(ctx, "Corpus removed",
		slog.String("corpus_name", info.Name),
		slog.Int("corpus_id", info.Id),
	)
	return tx.Commit()
}

// AppendTokens appends an ordered token sequence to the end of a
// stored corpus and updates its token count. The entire operation is
// performed within a single transaction.
func (s *Store) AppendTokens(ctx context.Context, info CorpusInfo, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	stmtInsertToken, err := tx.PrepareContext(ctx, `INSERT INTO corpus_tokens (corpus_id, position, token_text) VALUES (?, ?, ?);`)
	if err != nil {
		return fmt.Errorf("failed to prepare token insert statement: %w", err)
	}
	defer func(stmt *sql.Stmt) {
		_ = stmt.Close()
	}(stmtInsertToken)

	for i, tok := range tokens {
		if _, err = stmtInsertToken.ExecContext(ctx, info.Id, info.TokenCount+i, tok); err != nil {
			return fmt.Errorf("failed to insert token at position %d: %w", info.TokenCount+i, err)
		}
	}

	if _, err = tx.StmtContext(ctx, s.stmtSetCount).ExecContext(ctx, info.TokenCount+len(tokens), info.Id); err != nil {
		return fmt.Errorf("failed to update token count for corpus %d: %w", info.Id, err)
	}

	s.logger.InfoContext(ctx, "Tokens stored",
		slog.String("corpus_name", info.Name),
		slog.Int("corpus_id", info.Id),
		slog.Int("tokens_added", len(tokens)),
	)
	return tx.Commit()
}

// LoadTokens returns the full ordered token sequence of a named
// corpus, ready to be passed to markov.Chain.Train.
func (s *Store) LoadTokens(ctx context.Context, name string) ([]string, error) {
	info, err := s.GetInfo(ctx, name)
	if err != nil {
		return nil, err
	}

	rows, err := s.stmtLoadTokens.QueryContext(ctx, info.Id)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	tokens := make([]string, 0, info.TokenCount)
	for rows.Next() {
		var tok string
		if err = rows.Scan(&tok); err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}
