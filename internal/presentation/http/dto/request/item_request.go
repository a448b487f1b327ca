package request

// ItemRequest represents a create/update request for a catalog item
type ItemRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=255"`
	Weight      *float64 `json:"weight" binding:"omitempty,gt=0"`
	WeightUnit  string   `json:"weight_unit" binding:"omitempty,oneof=g kg ml l pcs"`
	RateExclGST float64  `json:"rate_excl_gst" binding:"required,gte=0"`
	MRPInclGST  *float64 `json:"mrp_incl_gst" binding:"omitempty,gte=0"`
	HSNCode     *string  `json:"hsn_code" binding:"omitempty,max=20"`
	GSTRate     float64  `json:"gst_rate" binding:"gte=0,lte=100"`
}
