package deployment

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/imamik/podctl/internal/util/naming"
)

// File operations, replaceable in tests.
var (
	writeFile = os.WriteFile
	readFile  = os.ReadFile
)

// Record describes a provisioned pod and how to reach it.
type Record struct {
	PodID        string `json:"pod_id"`
	CreatedAt    string `json:"created_at"`
	DockerImage  string `json:"docker_image"`
	AccessURL    string `json:"access_url"`
	WebSocketURL string `json:"websocket_url"`
	Model        string `json:"model"`
}

// NewRecord builds the record for pod podID created from req at createdAt.
func NewRecord(podID string, req Request, createdAt time.Time) *Record {
	return &Record{
		PodID:        podID,
		CreatedAt:    createdAt.Format(time.RFC3339),
		DockerImage:  req.Image,
		AccessURL:    naming.AccessURL(podID, req.Port, req.ProxyDomain),
		WebSocketURL: naming.StreamURL(podID, req.Port, req.ProxyDomain, req.StreamPath),
		Model:        req.Model,
	}
}

// Marshal returns the record as indented JSON.
func (r *Record) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal deployment record: %w", err)
	}
	return append(data, '\n'), nil
}

// Save writes the record to path, replacing any previous content.
func (r *Record) Save(path string) error {
	data, err := r.Marshal()
	if err != nil {
		return err
	}
	if err := writeFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write deployment record %s: %w", path, err)
	}
	return nil
}

// LoadRecord reads a record written by Save.
func LoadRecord(path string) (*Record, error) {
	data, err := readFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s does not exist", ErrNoRecord, path)
		}
		return nil, fmt.Errorf("failed to read deployment record %s: %w", path, err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse deployment record %s: %w", path, err)
	}
	if rec.PodID == "" || rec.AccessURL == "" {
		return nil, fmt.Errorf("%w: %s has no pod_id or access_url", ErrNoRecord, path)
	}
	return &rec, nil
}
