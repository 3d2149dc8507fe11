package domain

import (
	"encoding/json"
	"fmt"
)

// AssetType tags the two asset variants.
type AssetType string

const (
	AssetTypeInvestment AssetType = "investment"
	AssetTypeProperty   AssetType = "property"
)

// Asset is the shared surface of the two variants. The aggregator dispatches
// on Type rather than relying on inheritance-style embedding; each variant
// owns its inputs record and the projectors read it without mutating it.
type Asset interface {
	ID() string
	Name() string
	Type() AssetType
	Enabled() bool
}

// assetRecord is the plain serialization shape consumed and produced by the
// persistence collaborator: {id, name, type, enabled, inputs}.
type assetRecord struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Type    AssetType       `json:"type"`
	Enabled *bool           `json:"enabled"`
	Inputs  json.RawMessage `json:"inputs"`
}

// MarshalAsset serializes an asset to its plain record form.
func MarshalAsset(a Asset) ([]byte, error) {
	var inputs any
	switch v := a.(type) {
	case *Investment:
		inputs = v.Inputs
	case *Property:
		inputs = v.Inputs
	default:
		return nil, fmt.Errorf("unknown asset type %q", a.Type())
	}
	raw, err := json.Marshal(inputs)
	if err != nil {
		return nil, fmt.Errorf("marshal inputs for asset %s: %w", a.ID(), err)
	}
	enabled := a.Enabled()
	return json.Marshal(assetRecord{
		ID:      a.ID(),
		Name:    a.Name(),
		Type:    a.Type(),
		Enabled: &enabled,
		Inputs:  raw,
	})
}

// UnmarshalAsset restores an asset from its plain record form. Records
// written by older versions may be missing newer fields; those load with
// their documented defaults. A missing enabled flag loads as enabled.
func UnmarshalAsset(data []byte) (Asset, error) {
	var rec assetRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal asset record: %w", err)
	}
	enabled := true
	if rec.Enabled != nil {
		enabled = *rec.Enabled
	}
	switch rec.Type {
	case AssetTypeInvestment:
		inv := &Investment{AssetID: rec.ID, DisplayName: rec.Name, IsEnabled: enabled}
		if len(rec.Inputs) > 0 {
			if err := json.Unmarshal(rec.Inputs, &inv.Inputs); err != nil {
				return nil, fmt.Errorf("unmarshal investment inputs for %s: %w", rec.ID, err)
			}
		}
		return inv, nil
	case AssetTypeProperty:
		prop := &Property{AssetID: rec.ID, DisplayName: rec.Name, IsEnabled: enabled}
		if len(rec.Inputs) > 0 {
			if err := json.Unmarshal(rec.Inputs, &prop.Inputs); err != nil {
				return nil, fmt.Errorf("unmarshal property inputs for %s: %w", rec.ID, err)
			}
		}
		return prop, nil
	default:
		return nil, fmt.Errorf("unknown asset type %q", rec.Type)
	}
}
