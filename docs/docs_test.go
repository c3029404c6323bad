package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestReadDoc(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("ReadDoc: %v", err)
	}

	var doc struct {
		Info  struct{ Title string } `json:"info"`
		Paths map[string]any         `json:"paths"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("rendered doc is not JSON: %v", err)
	}
	if doc.Info.Title != SwaggerInfo.Title {
		t.Errorf("title = %q", doc.Info.Title)
	}
	for _, p := range []string{"/api/v1/chat/messages", "/api/v1/chat/settings", "/api/v1/cache/stats"} {
		if _, ok := doc.Paths[p]; !ok {
			t.Errorf("missing path %s", p)
		}
	}
}
