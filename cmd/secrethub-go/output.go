package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/jshobe/secrethub-go/pkg/secrethub"
)

const (
	formatText  = "text"
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func parseFormat(s string, allowed ...string) (string, error) {
	for _, f := range allowed {
		if s == f {
			return s, nil
		}
	}
	return "", fmt.Errorf("unsupported output %q (want one of %v)", s, allowed)
}

type secretView struct {
	ID            string `json:"id" yaml:"id"`
	DirectoryID   string `json:"directory_id" yaml:"directory_id"`
	RepositoryID  string `json:"repository_id" yaml:"repository_id"`
	Name          string `json:"name" yaml:"name"`
	BlindName     string `json:"blind_name" yaml:"blind_name"`
	VersionCount  int    `json:"version_count" yaml:"version_count"`
	LatestVersion int    `json:"latest_version" yaml:"latest_version"`
	Status        string `json:"status" yaml:"status"`
	CreatedAt     string `json:"created_at" yaml:"created_at"`
}

type versionView struct {
	Path      string      `json:"path" yaml:"path"`
	Value     string      `json:"value" yaml:"value"`
	ID        string      `json:"id,omitempty" yaml:"id,omitempty"`
	Version   int         `json:"version,omitempty" yaml:"version,omitempty"`
	Status    string      `json:"status,omitempty" yaml:"status,omitempty"`
	CreatedAt string      `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	Secret    *secretView `json:"secret,omitempty" yaml:"secret,omitempty"`
}

func newVersionView(path string, v *secrethub.SecretVersion, meta bool) versionView {
	view := versionView{Path: path, Value: v.Data}
	if !meta {
		return view
	}
	view.ID = v.SecretVersionID.String()
	view.Version = v.Version
	view.Status = v.Status
	view.CreatedAt = v.CreatedAt.UTC().Format(time.RFC3339)
	view.Secret = &secretView{
		ID:            v.Secret.SecretID.String(),
		DirectoryID:   v.Secret.DirectoryID.String(),
		RepositoryID:  v.Secret.RepositoryID.String(),
		Name:          v.Secret.Name,
		BlindName:     v.Secret.BlindName,
		VersionCount:  v.Secret.VersionCount,
		LatestVersion: v.Secret.LatestVersion,
		Status:        v.Secret.Status,
		CreatedAt:     v.Secret.CreatedAt.UTC().Format(time.RFC3339),
	}
	return view
}

func renderVersionTable(w io.Writer, v versionView) error {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"FIELD", "VALUE"})
	tw.Append([]string{"PATH", v.Path})
	tw.Append([]string{"VALUE", v.Value})
	if s := v.Secret; s != nil {
		tw.Append([]string{"VERSION", strconv.Itoa(v.Version)})
		tw.Append([]string{"VERSION_ID", v.ID})
		tw.Append([]string{"STATUS", v.Status})
		tw.Append([]string{"CREATED_AT", v.CreatedAt})
		tw.Append([]string{"SECRET_ID", s.ID})
		tw.Append([]string{"NAME", s.Name})
		tw.Append([]string{"BLIND_NAME", s.BlindName})
		tw.Append([]string{"VERSIONS", strconv.Itoa(s.VersionCount)})
		tw.Append([]string{"DIRECTORY_ID", s.DirectoryID})
		tw.Append([]string{"REPOSITORY_ID", s.RepositoryID})
	}
	tw.Render()
	return nil
}

func renderEnvTable(w io.Writer, env map[string]string) {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"NAME", "VALUE"})
	for _, k := range keys {
		tw.Append([]string{k, env[k]})
	}
	tw.Render()
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}
	return fmt.Errorf("unsupported output %q", format)
}
