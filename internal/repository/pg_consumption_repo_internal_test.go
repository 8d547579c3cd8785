package repository

import (
	"strings"
	"testing"

	"github.com/ricirt/producer-consumer/internal/domain"
)

func TestListConsumptionsQuery(t *testing.T) {
	t.Run("no consumer filter", func(t *testing.T) {
		q, args := listConsumptionsQuery(domain.ConsumptionFilter{Limit: 20})
		if strings.Contains(q, "WHERE") {
			t.Fatalf("unexpected WHERE clause: %s", q)
		}
		if !strings.HasSuffix(q, "ORDER BY id DESC LIMIT $1") {
			t.Fatalf("unexpected query tail: %s", q)
		}
		if len(args) != 1 || args[0] != 20 {
			t.Fatalf("unexpected args: %v", args)
		}
	})

	t.Run("consumer filter", func(t *testing.T) {
		c := "Consumer_1"
		q, args := listConsumptionsQuery(domain.ConsumptionFilter{Consumer: &c, Limit: 5})
		if !strings.Contains(q, "WHERE consumer = $1") || !strings.HasSuffix(q, "LIMIT $2") {
			t.Fatalf("unexpected query: %s", q)
		}
		if len(args) != 2 || args[0] != "Consumer_1" || args[1] != 5 {
			t.Fatalf("unexpected args: %v", args)
		}
	})

	t.Run("negative limit clamped", func(t *testing.T) {
		_, args := listConsumptionsQuery(domain.ConsumptionFilter{Limit: -3})
		if args[len(args)-1] != 0 {
			t.Fatalf("expected limit 0, got %v", args[len(args)-1])
		}
	})
}
