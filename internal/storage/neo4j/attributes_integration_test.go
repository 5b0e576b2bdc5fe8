package neo4j

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/job-board/internal/domain"
	pkgneo4j "github.com/honeycarbs/job-board/pkg/neo4j"
)

func TestAttributeRepositoryIntegration(t *testing.T) {
	uri := os.Getenv("NEO4J_URI")
	if uri == "" {
		t.Skip("NEO4J_URI must be set to run this test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := pkgneo4j.NewClient(ctx, pkgneo4j.Config{
		URI:      uri,
		Username: os.Getenv("NEO4J_USERNAME"),
		Password: os.Getenv("NEO4J_PASSWORD"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close(context.Background()) })

	repo := NewAttributeRepository(client)

	id := "test-" + uuid.NewString()
	missing := "test-" + uuid.NewString()
	t.Cleanup(func() {
		session := client.NewSession(context.Background(), neo4j.AccessModeWrite)
		defer session.Close(context.Background())
		_, _ = session.Run(context.Background(), "MATCH (j:Job) WHERE j.id IN $ids DETACH DELETE j", map[string]any{"ids": []string{id, missing}})
	})

	first := domain.Attributes{JobID: id, Salary: "$1111", Category: domain.CategoryIT, Location: domain.LocationHybrid, PostedDate: "2026-10-16"}
	second := first
	second.Salary = "$5555"
	second.Category = domain.CategoryMarketing

	require.NoError(t, repo.SaveAttributes(ctx, []domain.Attributes{first}))
	require.NoError(t, repo.SaveAttributes(ctx, []domain.Attributes{second}))

	got, err := repo.LoadAttributes(ctx, []string{id, missing})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, first, got[id])
}
