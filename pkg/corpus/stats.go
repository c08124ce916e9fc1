package corpus

import (
	"context"
	"sort"
)

// StoreStats holds aggregated statistics for the entire database,
// including a list of all corpora and global token counts.
type StoreStats struct {
	Corpora        []CorpusInfo `yaml:"corpora"`
	TotalTokens    int          `yaml:"total_tokens"`
	DistinctTokens int          `yaml:"distinct_tokens"`
}

// Stats returns a snapshot of statistics for the entire database.
func (s *Store) Stats(ctx context.Context) (*StoreStats, error) {
	infos, err := s.GetInfos(ctx)
	if err != nil {
		return nil, err
	}

	var total int
	if err = s.stmtTotalToks.QueryRowContext(ctx).Scan(&total); err != nil {
		return nil, err
	}

	var distinct int
	if err = s.stmtUniqueToks.QueryRowContext(ctx).Scan(&distinct); err != nil {
		return nil, err
	}

	corpora := make([]CorpusInfo, 0, len(infos))
	for _, info := range infos {
		corpora = append(corpora, info)
	}
	sort.Slice(corpora, func(i, j int) bool {
		return corpora[i].Name < corpora[j].Name
	})

	return &StoreStats{
		Corpora:        corpora,
		TotalTokens:    total,
		DistinctTokens: distinct,
	}, nil
}
