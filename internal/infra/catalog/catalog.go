package catalog

import (
	"context"
	_ "embed"
	"os"
	"strings"

	"scheme-console/internal/domain/scheme"
	"scheme-console/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultSeed []byte

var (
	ErrInvalidSeed     = errs.New("invalid catalog seed")
	ErrUnknownSKUGroup = errs.New("no sku catalog for value type")
)

type seedFile struct {
	Regions     []regionRow         `yaml:"regions"`
	SKUs        map[string][]skuRow `yaml:"skus"`
	PackSizes   []packSizeRow       `yaml:"packSizes"`
	CouponTypes []couponTypeRow     `yaml:"couponTypes"`
}

type regionRow struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

type skuRow struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Code string `yaml:"code"`
}

type packSizeRow struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	SKUID string `yaml:"skuId"`
}

type couponTypeRow struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// StaticCatalog serves reference data loaded once from a YAML seed. It is
// read-only after construction and safe for concurrent use.
type StaticCatalog struct {
	regions     []scheme.Region
	skus        map[scheme.ValueType][]scheme.SKU
	packSizes   map[string][]scheme.PackSize
	couponTypes []scheme.CouponType
}

// Load reads the seed at path, or the embedded seed when path is empty.
func Load(path string) (*StaticCatalog, error) {
	data := defaultSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, errs.Wrapf(err, "read catalog %s", path)
		}
		data = b
	}
	return Parse(data)
}

func Parse(data []byte) (*StaticCatalog, error) {
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode catalog"), ErrInvalidSeed)
	}
	return build(seed)
}

func build(seed seedFile) (*StaticCatalog, error) {
	c := &StaticCatalog{
		skus:      make(map[scheme.ValueType][]scheme.SKU),
		packSizes: make(map[string][]scheme.PackSize),
	}

	seenRegion := make(map[string]struct{}, len(seed.Regions))
	for _, r := range seed.Regions {
		code := scheme.NormalizeCode(r.Code)
		if code == "" {
			return nil, errs.Wrap(ErrInvalidSeed, "region without code")
		}
		if _, dup := seenRegion[code]; dup {
			return nil, errs.Wrapf(ErrInvalidSeed, "region %s listed twice", code)
		}
		seenRegion[code] = struct{}{}
		c.regions = append(c.regions, scheme.Region{Code: code, Name: strings.TrimSpace(r.Name)})
	}

	skuIDs := make(map[string]struct{})
	for group, rows := range seed.SKUs {
		vt, err := scheme.NewValueType(group)
		if err != nil {
			return nil, errs.Wrapf(ErrInvalidSeed, "sku group %q", group)
		}
		for _, s := range rows {
			if _, dup := skuIDs[s.ID]; dup {
				return nil, errs.Wrapf(ErrInvalidSeed, "sku %s listed twice", s.ID)
			}
			skuIDs[s.ID] = struct{}{}
			c.skus[vt] = append(c.skus[vt], scheme.SKU{ID: s.ID, Name: s.Name, Code: s.Code})
		}
	}

	for _, p := range seed.PackSizes {
		if _, ok := skuIDs[p.SKUID]; !ok {
			return nil, errs.Wrapf(ErrInvalidSeed, "pack size %s refers to unknown sku %s", p.ID, p.SKUID)
		}
		c.packSizes[p.SKUID] = append(c.packSizes[p.SKUID], scheme.PackSize{ID: p.ID, Label: p.Label, SKUID: p.SKUID})
	}

	for _, t := range seed.CouponTypes {
		c.couponTypes = append(c.couponTypes, scheme.CouponType{ID: t.ID, Name: t.Name, Description: t.Description})
	}

	return c, nil
}

func (c *StaticCatalog) ListRegions(_ context.Context) ([]scheme.Region, error) {
	return append([]scheme.Region{}, c.regions...), nil
}

func (c *StaticCatalog) ListSKUs(_ context.Context, vt scheme.ValueType) ([]scheme.SKU, error) {
	if !vt.IsValid() {
		return nil, errs.Wrapf(ErrUnknownSKUGroup, "%q", vt)
	}
	return append([]scheme.SKU{}, c.skus[vt]...), nil
}

// ListPackSizes returns an empty list for an unknown SKU.
func (c *StaticCatalog) ListPackSizes(_ context.Context, skuID string) ([]scheme.PackSize, error) {
	return append([]scheme.PackSize{}, c.packSizes[skuID]...), nil
}

func (c *StaticCatalog) ListCouponTypes(_ context.Context) ([]scheme.CouponType, error) {
	return append([]scheme.CouponType{}, c.couponTypes...), nil
}
