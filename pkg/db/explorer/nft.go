package explorer

import (
	"context"
	"fmt"
	"strings"

	models "github.com/chainlens-network/addressx/pkg/db/models/explorer"
)

// initNFTInstances creates the per-instance ownership table. Collections
// are derived from it by grouping, not stored separately.
func (db *DB) initNFTInstances(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS "%s"."nft_instances" (
			address String CODEC(ZSTD(1)),
			token_contract String CODEC(ZSTD(1)),
			token_id UInt256,
			token_name Nullable(String),
			token_symbol Nullable(String),
			standard LowCardinality(String),
			amount UInt256,
			metadata_url Nullable(String),
			updated_at DateTime64(6)
		) ENGINE = ReplacingMergeTree(updated_at)
		ORDER BY (address, token_contract, token_id)
	`, db.Name)
	if err := db.Exec(ctx, query); err != nil {
		return fmt.Errorf("create nft_instances: %w", err)
	}
	return nil
}

// AddressNFTs retrieves the NFT instances held by an address, ascending by
// (token_contract, token_id).
func (db *DB) AddressNFTs(ctx context.Context, hash string, opts NFTPageOpts) ([]*models.NFTInstance, error) {
	conds := []string{"address = ?"}
	args := []any{hash}

	if len(opts.Standards) > 0 {
		conds = append(conds, "standard IN ?")
		args = append(args, opts.Standards)
	}
	if opts.AfterContract != "" && opts.AfterTokenID != nil {
		conds = append(conds, "(token_contract, token_id) > (?, ?)")
		args = append(args, opts.AfterContract, opts.AfterTokenID)
	}

	query := fmt.Sprintf(`
		SELECT token_contract, token_id, standard, amount, metadata_url
		FROM "%s"."nft_instances" FINAL
		WHERE %s
		ORDER BY token_contract ASC, token_id ASC
		LIMIT ?
	`, db.Name, strings.Join(conds, " AND "))
	args = append(args, opts.Limit)

	rows := make([]*models.NFTInstance, 0, opts.Limit)
	if err := db.Select(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query address nfts failed: %w", err)
	}
	return rows, nil
}

// AddressNFTCollections groups an address's instances per contract,
// ascending by token_contract.
func (db *DB) AddressNFTCollections(ctx context.Context, hash string, opts NFTCollectionPageOpts) ([]*models.NFTCollection, error) {
	conds := []string{"address = ?"}
	args := []any{hash}

	if len(opts.Standards) > 0 {
		conds = append(conds, "standard IN ?")
		args = append(args, opts.Standards)
	}
	if opts.AfterContract != "" {
		conds = append(conds, "token_contract > ?")
		args = append(args, opts.AfterContract)
	}

	query := fmt.Sprintf(`
		SELECT token_contract,
		       any(token_name) AS token_name,
		       any(token_symbol) AS token_symbol,
		       any(standard) AS standard,
		       count() AS instances_count
		FROM "%s"."nft_instances" FINAL
		WHERE %s
		GROUP BY token_contract
		ORDER BY token_contract ASC
		LIMIT ?
	`, db.Name, strings.Join(conds, " AND "))
	args = append(args, opts.Limit)

	rows := make([]*models.NFTCollection, 0, opts.Limit)
	if err := db.Select(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query address nft collections failed: %w", err)
	}
	return rows, nil
}
