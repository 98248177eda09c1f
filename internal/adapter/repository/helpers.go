package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// nullIfEmpty converte string vazia em NULL para colunas com unicidade
// condicional (email, documento, código de barras).
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// deref devolve o valor de um ponteiro de string vindo do banco,
// tratando NULL como vazio.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// withTx executa fn dentro de uma transação, com rollback automático em
// caso de erro.
func withTx(ctx context.Context, pool *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao confirmar transação: %w", err)
	}
	return nil
}
