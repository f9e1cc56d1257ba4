package orders

import (
	"github.com/bhojansetu/bhojan-setu-api/internal/application/dto"
	"github.com/bhojansetu/bhojan-setu-api/internal/domain/entity"
)

// Placeholders for enrichment when a referenced row is missing; the order still
// shows (same graceful-degradation policy as the catalog reader).
const (
	unknownProduct      = "Unknown Product"
	unknownCategory     = "Unknown"
	unknownSupplierName = "Unknown Supplier"
	unknownVendorName   = "Unknown Vendor"
)

// HistoryForVendor lists the vendor's orders newest first, enriched with the
// product's name/category and the supplier's full name.
func (uc *UseCase) HistoryForVendor(vendorID string) (*dto.VendorOrderListResponse, error) {
	orders, err := uc.orderRepo.ListByVendor(vendorID)
	if err != nil {
		return nil, err
	}
	out := &dto.VendorOrderListResponse{Items: []dto.VendorOrder{}}
	if len(orders) == 0 {
		return out, nil
	}

	productMap, profileMap, err := uc.lookups(orders, func(o *entity.Order) string { return o.SupplierID })
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		item := dto.VendorOrder{
			ID:                o.ID,
			ProductName:       unknownProduct,
			Category:          unknownCategory,
			QuantityRequested: o.QuantityRequested,
			TotalAmount:       o.TotalAmount,
			Status:            o.Status,
			SupplierName:      unknownSupplierName,
			CreatedAt:         o.CreatedAt,
		}
		if p, ok := productMap[o.ProductID]; ok {
			item.ProductName = p.Name
			item.Category = p.Category
		}
		if profile, ok := profileMap[o.SupplierID]; ok {
			item.SupplierName = profile.FullName
		}
		out.Items = append(out.Items, item)
	}
	return out, nil
}

// HistoryForSupplier is the symmetric incoming-orders view with the vendor's name.
func (uc *UseCase) HistoryForSupplier(supplierID string) (*dto.IncomingOrderListResponse, error) {
	orders, err := uc.orderRepo.ListBySupplier(supplierID)
	if err != nil {
		return nil, err
	}
	out := &dto.IncomingOrderListResponse{Items: []dto.IncomingOrder{}}
	if len(orders) == 0 {
		return out, nil
	}

	productMap, profileMap, err := uc.lookups(orders, func(o *entity.Order) string { return o.VendorID })
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		item := dto.IncomingOrder{
			ID:                o.ID,
			ProductName:       unknownProduct,
			Category:          unknownCategory,
			QuantityRequested: o.QuantityRequested,
			TotalAmount:       o.TotalAmount,
			Status:            o.Status,
			Notes:             o.Notes,
			VendorName:        unknownVendorName,
			CreatedAt:         o.CreatedAt,
		}
		if p, ok := productMap[o.ProductID]; ok {
			item.ProductName = p.Name
			item.Category = p.Category
		}
		if profile, ok := profileMap[o.VendorID]; ok {
			item.VendorName = profile.FullName
		}
		out.Items = append(out.Items, item)
	}
	return out, nil
}

// lookups builds the product and counterpart-profile maps for a batch of orders.
func (uc *UseCase) lookups(orders []*entity.Order, counterpart func(*entity.Order) string) (map[string]*entity.Product, map[string]*entity.Profile, error) {
	productIDs := make([]string, 0, len(orders))
	profileIDs := make([]string, 0, len(orders))
	seenProducts := make(map[string]struct{}, len(orders))
	seenProfiles := make(map[string]struct{}, len(orders))
	for _, o := range orders {
		if _, ok := seenProducts[o.ProductID]; !ok {
			seenProducts[o.ProductID] = struct{}{}
			productIDs = append(productIDs, o.ProductID)
		}
		id := counterpart(o)
		if _, ok := seenProfiles[id]; !ok {
			seenProfiles[id] = struct{}{}
			profileIDs = append(profileIDs, id)
		}
	}

	products, err := uc.products.GetByIDs(productIDs)
	if err != nil {
		return nil, nil, err
	}
	profiles, err := uc.profiles.GetByUserIDs(profileIDs)
	if err != nil {
		return nil, nil, err
	}

	productMap := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		productMap[p.ID] = p
	}
	profileMap := make(map[string]*entity.Profile, len(profiles))
	for _, p := range profiles {
		profileMap[p.UserID] = p
	}
	return productMap, profileMap, nil
}
