package config

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/dyaboykyl/investisizer-sub001/internal/domain"
)

// Portfolio is a loaded input file: the shared settings plus every asset.
type Portfolio struct {
	Settings domain.PortfolioSettings
	Assets   []domain.Asset
}

// InputParser handles parsing of portfolio input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

type assetFile struct {
	ID      string           `yaml:"id"`
	Name    string           `yaml:"name"`
	Type    domain.AssetType `yaml:"type"`
	Enabled *bool            `yaml:"enabled"`
	Inputs  yaml.Node        `yaml:"inputs"`
}

type portfolioFile struct {
	Settings domain.PortfolioSettings `yaml:"settings"`
	Assets   []assetFile              `yaml:"assets"`
}

// LoadFromFile loads a portfolio from a YAML file. Assets without ids are
// assigned fresh ones; assets without an enabled flag load as enabled.
func (ip *InputParser) LoadFromFile(filename string) (*Portfolio, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse parses YAML portfolio bytes.
func (ip *InputParser) Parse(data []byte) (*Portfolio, error) {
	var file portfolioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	portfolio := &Portfolio{Settings: file.Settings.Normalized()}
	seen := make(map[string]bool)
	for i, af := range file.Assets {
		asset, err := ip.buildAsset(af)
		if err != nil {
			return nil, fmt.Errorf("asset %d (%s): %w", i, af.Name, err)
		}
		if seen[asset.ID()] {
			return nil, fmt.Errorf("duplicate asset id %q", asset.ID())
		}
		seen[asset.ID()] = true
		portfolio.Assets = append(portfolio.Assets, asset)
	}
	return portfolio, nil
}

func (ip *InputParser) buildAsset(af assetFile) (domain.Asset, error) {
	id := af.ID
	if id == "" {
		id = uuid.NewString()
	}
	enabled := true
	if af.Enabled != nil {
		enabled = *af.Enabled
	}
	switch af.Type {
	case domain.AssetTypeInvestment:
		inv := &domain.Investment{AssetID: id, DisplayName: af.Name, IsEnabled: enabled}
		if !af.Inputs.IsZero() {
			if err := af.Inputs.Decode(&inv.Inputs); err != nil {
				return nil, fmt.Errorf("decode investment inputs: %w", err)
			}
		}
		return inv, nil
	case domain.AssetTypeProperty:
		prop := &domain.Property{AssetID: id, DisplayName: af.Name, IsEnabled: enabled}
		if !af.Inputs.IsZero() {
			if err := af.Inputs.Decode(&prop.Inputs); err != nil {
				return nil, fmt.Errorf("decode property inputs: %w", err)
			}
		}
		return prop, nil
	default:
		return nil, fmt.Errorf("unknown asset type %q", af.Type)
	}
}
