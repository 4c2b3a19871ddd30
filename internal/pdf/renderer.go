package pdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/mchexpo/fairhall-contracts/internal/artifact"
	"github.com/mchexpo/fairhall-contracts/internal/model"
)

// Renderer generates the contract document and persists it into the
// artifact store, returning the reference the workflow hands to callers.
type Renderer struct {
	generator *Generator
	store     *artifact.Store
}

func NewRenderer(generator *Generator, store *artifact.Store) *Renderer {
	return &Renderer{generator: generator, store: store}
}

func (r *Renderer) Render(ctx context.Context, data model.ContractData) (model.ContractArtifact, error) {
	if err := ctx.Err(); err != nil {
		return model.ContractArtifact{}, err
	}

	content, err := r.generator.Generate(data)
	if err != nil {
		return model.ContractArtifact{}, err
	}

	name := buildFileName(data)
	path, err := r.store.Save(name, content)
	if err != nil {
		return model.ContractArtifact{}, err
	}
	return model.ContractArtifact{Filename: name, FilePath: path}, nil
}

func buildFileName(data model.ContractData) string {
	company := sanitizeFileName(data.Company.Name)
	if company == "" {
		company = sanitizeFileName(data.Company.ID)
	}
	return fmt.Sprintf("contract-fair%d-hall%d-%s.pdf", data.FairID, data.HallID, company)
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
