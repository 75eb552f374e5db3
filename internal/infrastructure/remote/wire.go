package remote

import (
	"encoding/json"

	"pcbuild_configurator/internal/domain/entities"
)

// envelope is the service's response wrapper. Some endpoints answer with the
// bare payload, so Data may be empty.
type envelope struct {
	Success *bool           `json:"success,omitempty"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
}

type createBody struct {
	ConfigName string            `json:"configName"`
	Platform   entities.Platform `json:"platform"`
	UseCase    string            `json:"useCase"`
	Budget     entities.Budget   `json:"budget"`
	SessionID  string            `json:"sessionId,omitempty"`
}

type addComponentBody struct {
	ComponentType entities.Category `json:"componentType"`
	ProductID     string            `json:"productId"`
	Quantity      int               `json:"quantity"`
}

type removeComponentBody struct {
	ComponentType entities.Category `json:"componentType"`
	StorageIndex  *int              `json:"storageIndex,omitempty"`
}

// normalizeIDs rewrites document ids ("_id") to "id" and expands selections
// whose product is an unpopulated id reference.
func normalizeIDs(v any) any {
	switch t := v.(type) {
	case map[string]any:
		if id, ok := t["_id"]; ok {
			if _, has := t["id"]; !has {
				t["id"] = id
			}
			delete(t, "_id")
		}
		if ref, ok := t["product"].(string); ok {
			delete(t, "product")
			if _, has := t["productId"]; !has {
				t["productId"] = ref
			}
		}
		for k, child := range t {
			t[k] = normalizeIDs(child)
		}
		return t
	case []any:
		for i, child := range t {
			t[i] = normalizeIDs(child)
		}
		return t
	}
	return v
}

// decodeNormalized decodes raw into out after id normalization.
func decodeNormalized(raw json.RawMessage, out any) error {
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return err
	}
	buf, err := json.Marshal(normalizeIDs(generic))
	if err != nil {
		return err
	}
	return json.Unmarshal(buf, out)
}

// compatibilityBody is the compatibility endpoint's data object.
type compatibilityBody struct {
	Compatibility *entities.Verdict `json:"compatibility"`
}

// decodeVerdict prefers the compatibility key and falls back to a verdict
// sent as the whole data object.
func decodeVerdict(raw json.RawMessage) (entities.Verdict, error) {
	var wrapped compatibilityBody
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return entities.Verdict{}, err
	}
	if wrapped.Compatibility != nil {
		return *wrapped.Compatibility, nil
	}
	var bare entities.Verdict
	if err := json.Unmarshal(raw, &bare); err != nil {
		return entities.Verdict{}, err
	}
	return bare, nil
}
