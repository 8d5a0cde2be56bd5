package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/aussiebroadwan/encore/internal/encore/domain"
)

// BulkOperation is one queued client mutation, typically replayed after the
// client was offline.
type BulkOperation struct {
	Type string              `json:"type"` // create, update or delete
	ID   json.Number         `json:"id,omitempty"`
	Data domain.ConcertInput `json:"data"`
}

type BulkResult struct {
	Success   bool              `json:"success"`
	Operation string            `json:"operation"`
	ID        int64             `json:"id,omitempty"`
	Error     string            `json:"error,omitempty"`
	Errors    map[string]string `json:"errors,omitempty"`
}

// Bulk applies ops in order. Each operation succeeds or fails on its own;
// a failure never aborts the rest.
func (s *ConcertService) Bulk(ctx context.Context, ops []BulkOperation) []BulkResult {
	results := make([]BulkResult, 0, len(ops))
	for _, op := range ops {
		results = append(results, s.applyBulk(ctx, op))
	}
	return results
}

func (s *ConcertService) applyBulk(ctx context.Context, op BulkOperation) BulkResult {
	res := BulkResult{Operation: op.Type}

	var id int64
	if op.Type == "update" || op.Type == "delete" {
		n, err := op.ID.Int64()
		if err != nil {
			res.Error = "Invalid concert id"
			return res
		}
		id = n
		res.ID = id
	}

	var err error
	switch op.Type {
	case "create":
		var c domain.Concert
		c, err = s.Create(ctx, op.Data)
		res.ID = c.ID
	case "update":
		_, err = s.Update(ctx, id, op.Data)
	case "delete":
		_, err = s.Delete(ctx, id)
	default:
		res.Error = "Unknown operation type"
		return res
	}

	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			res.Error = "Validation failed"
			res.Errors = verr.Fields
			return res
		}
		if domain.KindOf(err) == domain.KindInternal {
			res.Error = "Operation failed"
		} else {
			res.Error = err.Error()
		}
		return res
	}
	res.Success = true
	return res
}
