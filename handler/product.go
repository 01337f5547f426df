package handler

import "leevienna_shop/model"

// collectProductEdit turns the optional edit fields into a column update map;
// absent fields are left untouched. Only keychains carry a description
// column, so the caller says whether that field applies.
func collectProductEdit(input model.EditProductInput, withDescription bool) map[string]any {
	updates := map[string]any{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.ImageUrl != nil {
		updates["image_url"] = *input.ImageUrl
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if withDescription && input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.DisplayOrder != nil {
		updates["display_order"] = *input.DisplayOrder
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}
	return updates
}
