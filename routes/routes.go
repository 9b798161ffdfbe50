package routes

import (
	"net/http"

	"mfrida/adminpanel"
	"mfrida/auth"
	"mfrida/banners"
	"mfrida/categories"
	"mfrida/fbt"
	"mfrida/middleware"
	"mfrida/orders"
	"mfrida/pimages"
	"mfrida/products"
	"mfrida/ratelim"
	"mfrida/reviews"
	"mfrida/uploads"
	"mfrida/variants"
	"mfrida/wishlist"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/uploads/*filepath", http.Dir("static/uploads"))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/signup", ratelim.RateLimit(auth.Signup))
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.GET("/api/auth/me", middleware.Authenticate(auth.Me))
	router.POST("/api/auth/addresses", middleware.Authenticate(auth.AddAddress))
}

func AddProductRoutes(router *httprouter.Router) {
	// httprouter forbids static segments beside wildcards, so slug lookup
	// and the variant group listing live on their own prefixes.
	router.GET("/api/products", products.GetProducts)
	router.GET("/api/product/slug/:slug", products.GetProductBySlug)
	router.GET("/api/variant-groups", middleware.RequireAdmin(products.GetVariantGroups))
	router.GET("/api/products/:productid", products.GetProduct)
	router.GET("/api/products/:productid/variants", products.GetProductVariants)
	router.GET("/api/products/:productid/related", products.GetRelatedProducts)
	router.GET("/api/products/:productid/frequently-bought", fbt.GetFrequentlyBought)
	router.GET("/api/products/:productid/variant-options", variants.GetVariantsForProduct)
	router.GET("/api/products/:productid/images", pimages.GetProductImages)

	router.POST("/api/products", middleware.RequireAdmin(products.CreateProduct))
	router.PUT("/api/products/:productid", middleware.RequireAdmin(products.UpdateProduct))
	router.DELETE("/api/products/:productid", middleware.RequireAdmin(products.DeleteProduct))
}

func AddOrderRoutes(router *httprouter.Router, svc *orders.OrderService) {
	router.POST("/api/orders", middleware.Authenticate(svc.CreateOrder))
	router.GET("/api/orders", middleware.Authenticate(svc.GetOrders))
	router.GET("/api/orders/:orderid", middleware.Authenticate(svc.GetOrder))
	router.PUT("/api/orders/:orderid", middleware.RequireAdmin(svc.UpdateOrder))
	router.POST("/api/orders/:orderid/tracking", middleware.RequireAdmin(svc.AddTracking))
	router.GET("/api/orders/:orderid/invoice", middleware.Authenticate(svc.PrintInvoice))

	router.POST("/api/payments/create-order", ratelim.RateLimit(middleware.Authenticate(svc.CreatePaymentOrder)))
	router.POST("/api/payments/verify", ratelim.RateLimit(middleware.Authenticate(svc.VerifyPayment)))
}

func AddReviewRoutes(router *httprouter.Router) {
	router.POST("/api/reviews", ratelim.RateLimit(middleware.Authenticate(reviews.CreateReview)))
	router.GET("/api/reviews", middleware.OptionalAuthenticate(reviews.GetReviews))
	router.GET("/api/products/:productid/review-stats", reviews.GetReviewStats)
	router.GET("/api/reviews/:reviewid", reviews.GetReview)
	router.PUT("/api/reviews/:reviewid", middleware.RequireAdmin(reviews.UpdateReview))
	router.PUT("/api/reviews/:reviewid/own", middleware.Authenticate(reviews.UpdateOwnReview))
	router.DELETE("/api/reviews/:reviewid", middleware.Authenticate(reviews.DeleteReview))
}

func AddWishlistRoutes(router *httprouter.Router) {
	router.GET("/api/wishlist", middleware.Authenticate(wishlist.GetWishlist))
	router.POST("/api/wishlist/:productid", middleware.Authenticate(wishlist.AddToWishlist))
	router.DELETE("/api/wishlist/:productid", middleware.Authenticate(wishlist.RemoveFromWishlist))
	router.GET("/api/wishlist/:productid/check", middleware.Authenticate(wishlist.CheckWishlist))
}

func AddCategoryRoutes(router *httprouter.Router) {
	router.GET("/api/categories", middleware.OptionalAuthenticate(categories.GetCategories))
	router.GET("/api/categories/:categoryid", categories.GetCategory)
	router.POST("/api/categories", middleware.RequireAdmin(categories.CreateCategory))
	router.PUT("/api/categories/:categoryid", middleware.RequireAdmin(categories.UpdateCategory))
	router.DELETE("/api/categories/:categoryid", middleware.RequireAdmin(categories.DeleteCategory))
}

func AddBannerRoutes(router *httprouter.Router) {
	router.GET("/api/banners", middleware.OptionalAuthenticate(banners.GetBanners))
	router.POST("/api/banners", middleware.RequireAdmin(banners.CreateBanner))
	router.PUT("/api/banners/:bannerid", middleware.RequireAdmin(banners.UpdateBanner))
	router.DELETE("/api/banners/:bannerid", middleware.RequireAdmin(banners.DeleteBanner))
}

func AddAdminRoutes(router *httprouter.Router) {
	router.GET("/api/admin/dashboard", middleware.RequireAdmin(adminpanel.GetDashboardStats))
	router.GET("/api/admin/users", middleware.RequireAdmin(adminpanel.GetUsers))

	router.GET("/api/homepage", adminpanel.GetHomepage)
	router.PUT("/api/admin/homepage", middleware.RequireAdmin(adminpanel.UpdateHomepage))

	router.GET("/api/navigation", middleware.OptionalAuthenticate(adminpanel.GetNavigation))
	router.POST("/api/admin/navigation", middleware.RequireAdmin(adminpanel.CreateNavigationItem))
	router.PUT("/api/admin/navigation/:navid", middleware.RequireAdmin(adminpanel.UpdateNavigationItem))
	router.DELETE("/api/admin/navigation/:navid", middleware.RequireAdmin(adminpanel.DeleteNavigationItem))

	router.PUT("/api/admin/frequently-bought", middleware.RequireAdmin(fbt.SetFrequentlyBought))
	router.DELETE("/api/admin/frequently-bought/:productid", middleware.RequireAdmin(fbt.DeleteFrequentlyBought))

	router.POST("/api/admin/variants", middleware.RequireAdmin(variants.CreateVariant))
	router.PUT("/api/admin/variants/:variantid", middleware.RequireAdmin(variants.UpdateVariant))
	router.DELETE("/api/admin/variants/:variantid", middleware.RequireAdmin(variants.DeleteVariant))

	router.POST("/api/admin/product-images", middleware.RequireAdmin(pimages.CreateProductImage))
	router.PUT("/api/admin/product-images/:imageid", middleware.RequireAdmin(pimages.UpdateProductImage))
	router.DELETE("/api/admin/product-images/:imageid", middleware.RequireAdmin(pimages.DeleteProductImage))

	router.POST("/api/admin/uploads", middleware.RequireAdmin(uploads.UploadImage))
	router.DELETE("/api/admin/uploads/:publicid", middleware.RequireAdmin(uploads.DeleteImage))
}
