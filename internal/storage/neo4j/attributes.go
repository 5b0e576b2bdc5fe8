package neo4j

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/honeycarbs/job-board/internal/domain"
	"github.com/honeycarbs/job-board/internal/domain/job"
	pkgneo4j "github.com/honeycarbs/job-board/pkg/neo4j"
)

// Ensure AttributeRepository implements job.AttributeStore
var _ job.AttributeStore = (*AttributeRepository)(nil)

const (
	loadAttributesQuery = `
		MATCH (j:Job)
		WHERE j.id IN $ids
		RETURN j.id AS id, j.salary AS salary, j.category AS category,
		       j.location AS location, j.postedDate AS postedDate
	`

	// ON CREATE keeps the first generated values for a job
	saveAttributesQuery = `
		UNWIND $attrs AS attr
		MERGE (j:Job {id: attr.id})
		ON CREATE SET j.salary = attr.salary,
		              j.category = attr.category,
		              j.location = attr.location,
		              j.postedDate = attr.postedDate,
		              j.createdAt = datetime()
		WITH j
		MERGE (c:Category {name: j.category})
		MERGE (j)-[:IN_CATEGORY]->(c)
	`
)

// AttributeRepository stores synthetic job attributes as Job nodes in Neo4j
type AttributeRepository struct {
	client *pkgneo4j.Client
}

// NewAttributeRepository creates an AttributeRepository with a Neo4j client
func NewAttributeRepository(client *pkgneo4j.Client) *AttributeRepository {
	return &AttributeRepository{
		client: client,
	}
}

// LoadAttributes reads stored attributes for the given job IDs
func (r *AttributeRepository) LoadAttributes(ctx context.Context, ids []string) (map[string]domain.Attributes, error) {
	out := make(map[string]domain.Attributes, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	session := r.client.NewSession(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	records, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, loadAttributesQuery, map[string]any{"ids": ids})
		if err != nil {
			return nil, err
		}
		return result.Collect(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("neo4j: load attributes: %w", err)
	}

	for _, record := range records.([]*neo4j.Record) {
		attrs, ok := attributesFromRecord(record)
		if !ok {
			continue
		}
		out[attrs.JobID] = attrs
	}

	return out, nil
}

// SaveAttributes merges Job nodes, leaving already stored attributes untouched
func (r *AttributeRepository) SaveAttributes(ctx context.Context, attrs []domain.Attributes) error {
	if len(attrs) == 0 {
		return nil
	}

	session := r.client.NewSession(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	attrsData := make([]map[string]any, 0, len(attrs))
	for _, a := range attrs {
		attrsData = append(attrsData, map[string]any{
			"id":         a.JobID,
			"salary":     a.Salary,
			"category":   string(a.Category),
			"location":   string(a.Location),
			"postedDate": a.PostedDate,
		})
	}

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, saveAttributesQuery, map[string]any{"attrs": attrsData})
		if err != nil {
			return nil, fmt.Errorf("failed to execute attribute merge: %w", err)
		}
		return result.Consume(ctx)
	})

	return err
}

func attributesFromRecord(record *neo4j.Record) (domain.Attributes, bool) {
	m := record.AsMap()

	id, _ := m["id"].(string)
	salary, _ := m["salary"].(string)
	category, _ := m["category"].(string)
	location, _ := m["location"].(string)
	postedDate, _ := m["postedDate"].(string)

	if id == "" || salary == "" {
		return domain.Attributes{}, false
	}

	return domain.Attributes{
		JobID:      id,
		Salary:     salary,
		Category:   domain.Category(category),
		Location:   domain.Location(location),
		PostedDate: postedDate,
	}, true
}
