package usecases

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/domain"
	"github.com/google/uuid"
)

// tenantWorkspaceRoot returns the absolute workspace directory of a tenant.
func tenantWorkspaceRoot(base string, tenantID uuid.UUID) (string, error) {
	if strings.TrimSpace(base) == "" {
		return "", domain.NewConfigurationErr("workspaces root is not configured")
	}
	root, err := filepath.Abs(filepath.Join(base, tenantID.String()))
	if err != nil {
		return "", fmt.Errorf("failed to resolve workspace of tenant %s: %w", tenantID, err)
	}
	return root, nil
}
