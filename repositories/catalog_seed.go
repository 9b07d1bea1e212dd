package repositories

import "vibe-shop/models"

// DefaultCatalog is the fixed demo storefront inventory inserted on first
// boot. Product ids are stable; image paths resolve under /images.
func DefaultCatalog() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Vibe T-shirt", Price: 499.00, Description: "Soft cotton tee", Image: "/images/tshirt_1.png"},
		{ID: 2, Name: "Vibe Sneakers", Price: 2499.00, Description: "Comfort walking shoes", Image: "/images/sneakers_1.png"},
		{ID: 3, Name: "Vibe Mug", Price: 199.00, Description: "Ceramic mug 350mL", Image: "/images/mug_1.png"},
		{ID: 4, Name: "Vibe Headphones", Price: 3499.00, Description: "Over-ear, noise isolating", Image: "/images/headphones_1.png"},
		{ID: 5, Name: "Vibe Backpack", Price: 1299.00, Description: "15L urban backpack", Image: "/images/backpack_1.png"},
		{ID: 6, Name: "Vibe Denim Jacket", Price: 1799.00, Description: "Classic denim jacket for casual wear", Image: "/images/deniumjacket_1.png"},
		{ID: 7, Name: "Vibe Leather Shoes", Price: 2599.00, Description: "Premium leather shoes for formal style", Image: "/images/leathershoes_1.png"},
		{ID: 8, Name: "Vibe Hartter Shoes", Price: 2299.00, Description: "Elegant and comfortable footwear", Image: "/images/harttershoes_1.png"},
		{ID: 9, Name: "Vibe Mule Sneakers", Price: 1999.00, Description: "Slip-on sneakers with comfort sole", Image: "/images/mulesneakers_1.png"},
		{ID: 10, Name: "Vibe Suite", Price: 2999.00, Description: "Formal office suit - classic fit", Image: "/images/suite_1.png"},
		{ID: 11, Name: "Vibe Skinmumma Cream", Price: 499.00, Description: "Hydrating face cream for smooth skin", Image: "/images/skinmumma_1.png"},
		{ID: 12, Name: "Vibe Ponds Skin Cream", Price: 399.00, Description: "Light moisturizing skin cream", Image: "/images/ponds_skin_1.png"},
		{ID: 13, Name: "Vibe Naturabisse Serum", Price: 899.00, Description: "Advanced skin hydration serum", Image: "/images/naturabisse_1.png"},
		{ID: 14, Name: "Vibe Yuri Perfume", Price: 1599.00, Description: "Long-lasting fragrance for everyday use", Image: "/images/yuri_1.png"},
		{ID: 15, Name: "Galaxy S23 Ultra", Price: 94999.00, Description: "200MP flagship smartphone", Image: "/images/galaxy_s23_ultra.png"},
		{ID: 16, Name: "Galaxy S23 Ultra Pink", Price: 94999.00, Description: "Flagship phone in pink variant", Image: "/images/galaxy_s23_ultra_pink.png"},
		{ID: 17, Name: "Galaxy S24 Ultra", Price: 99999.00, Description: "AI-powered premium smartphone", Image: "/images/galaxy_s24_ultra.png"},
		{ID: 18, Name: "Galaxy S24 Ultra Purple", Price: 99999.00, Description: "Galaxy flagship purple edition", Image: "/images/galaxy_s24_ultra_purple.png"},
		{ID: 19, Name: "Google Pixel 10", Price: 89999.00, Description: "Flagship Google phone with Tensor G4", Image: "/images/google_pixel_10.png"},
		{ID: 20, Name: "Google Pixel", Price: 59999.00, Description: "AI camera phone by Google", Image: "/images/google_pixel.png"},
		{ID: 21, Name: "iPhone 15 Black", Price: 79999.00, Description: "Apple iPhone 15 in black color", Image: "/images/iphone_15_black.png"},
		{ID: 22, Name: "iPhone 15 Cement", Price: 79999.00, Description: "Unique cement grey iPhone 15", Image: "/images/iphone_15_cement.png"},
		{ID: 23, Name: "iPhone 15 Skin", Price: 79999.00, Description: "Custom skin variant of iPhone 15", Image: "/images/iphone_15_skin_color.png"},
		{ID: 24, Name: "iPhone 17", Price: 99999.00, Description: "Next-gen iPhone with A18 Pro", Image: "/images/iphone_17.png"},
		{ID: 25, Name: "JBL Headphones", Price: 3999.00, Description: "Bass-boosted wireless headphones", Image: "/images/jbl_headphones.png"},
		{ID: 26, Name: "MacBook M1 Cement", Price: 99999.00, Description: "Apple MacBook Air M1 - Cement Edition", Image: "/images/macbook_m1_cement.png"},
		{ID: 27, Name: "MacBook M1 Orange", Price: 99999.00, Description: "Apple M1 in bright orange color", Image: "/images/macbook_m1_orange.png"},
		{ID: 28, Name: "MacBook M2 Cement", Price: 129999.00, Description: "Apple MacBook Pro M2 - Cement", Image: "/images/macbook_m2_cement.png"},
	}
}
