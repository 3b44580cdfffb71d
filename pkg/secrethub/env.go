package secrethub

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

func decodeEnvironment(payload string) (map[string]string, error) {
	var env map[string]string
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		return nil, &EnvironmentError{Err: err}
	}
	if env == nil {
		env = map[string]string{}
	}
	return env, nil
}

// ExportEnv resolves the process environment and writes the result back into
// it, so that later os.Getenv calls observe secret values instead of
// references.
func (c *Client) ExportEnv() error {
	env, err := c.ResolveEnv()
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if os.Getenv(k) == env[k] {
			continue
		}
		if err := os.Setenv(k, env[k]); err != nil {
			return fmt.Errorf("secrethub: export %s: %w", k, err)
		}
	}
	c.log.Debug(context.Background(), "environment exported", "variables", len(keys))
	return nil
}

// Environ formats env as KEY=VALUE pairs sorted by key, ready for
// exec.Cmd.Env.
func Environ(env map[string]string) []string {
	out := make([]string, 0, len(env))
	for k, v := range env {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}
