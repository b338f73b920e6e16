package response

import "scheme-console/internal/domain/scheme"

type RegionResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type SKUResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type PackSizeResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	SKUID string `json:"sku_id"`
}

type CouponTypeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func FromRegions(rs []scheme.Region) []RegionResponse {
	res := make([]RegionResponse, len(rs))
	for i, r := range rs {
		res[i] = RegionResponse{Code: r.Code, Name: r.Name}
	}
	return res
}

func FromSKUs(skus []scheme.SKU) []SKUResponse {
	res := make([]SKUResponse, len(skus))
	for i, s := range skus {
		res[i] = SKUResponse{ID: s.ID, Name: s.Name, Code: s.Code}
	}
	return res
}

func FromPackSizes(ps []scheme.PackSize) []PackSizeResponse {
	res := make([]PackSizeResponse, len(ps))
	for i, p := range ps {
		res[i] = PackSizeResponse{ID: p.ID, Label: p.Label, SKUID: p.SKUID}
	}
	return res
}

func FromCouponTypes(ts []scheme.CouponType) []CouponTypeResponse {
	res := make([]CouponTypeResponse, len(ts))
	for i, t := range ts {
		res[i] = CouponTypeResponse{ID: t.ID, Name: t.Name, Description: t.Description}
	}
	return res
}
