package gradio

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Endpoints returns the names of the app's named API endpoints, sorted.
func (c *Client) Endpoints(ctx context.Context) ([]string, error) {
	var info struct {
		Named map[string]json.RawMessage `json:"named_endpoints"`
	}

	if err := c.getJSON(ctx, "/info", &info); err != nil {
		return nil, fmt.Errorf("gradio: app info: %w", err)
	}

	return slices.Sorted(maps.Keys(info.Named)), nil
}

// fnIndex resolves a named endpoint to its function index using the app
// config. Older servers key the queue protocol by function index rather
// than by endpoint name.
func (c *Client) fnIndex(ctx context.Context, apiName string) (int, error) {
	var conf struct {
		Dependencies []struct {
			ID      *int   `json:"id"`
			APIName string `json:"api_name"`
		} `json:"dependencies"`
	}

	if err := c.getJSON(ctx, "/config", &conf); err != nil {
		return 0, fmt.Errorf("gradio: app config: %w", err)
	}

	name := strings.TrimPrefix(apiName, "/")
	for i, dep := range conf.Dependencies {
		if strings.TrimPrefix(dep.APIName, "/") != name {
			continue
		}

		// Newer configs carry an explicit id; older ones are keyed by
		// position in the dependency list.
		if dep.ID != nil {
			return *dep.ID, nil
		}

		return i, nil
	}

	return 0, fmt.Errorf("gradio: endpoint %s not found in app config", apiName)
}
