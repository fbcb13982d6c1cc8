package snapshots

import (
	"fmt"
	"path/filepath"

	"github.com/mirrormods/scores-data-service/internal/domain"
)

// PayloadPath builds the path to a league's payload snapshot.
func PayloadPath(basePath string, league domain.League) string {
	return filepath.Join(basePath, "games", fmt.Sprintf("%s.json", league))
}
