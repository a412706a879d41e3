package routes

import (
	"log"
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/karavella/fabric-catalog/app/configs"
	"github.com/karavella/fabric-catalog/app/handlers"
	"github.com/karavella/fabric-catalog/app/handlers/admin"
	"github.com/karavella/fabric-catalog/app/middlewares"
	"github.com/karavella/fabric-catalog/app/repositories"
	"github.com/karavella/fabric-catalog/app/services"
	"github.com/karavella/fabric-catalog/app/utils/renderer"
	"github.com/karavella/fabric-catalog/app/utils/sessions"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB) *mux.Router {
	env := configs.LoadENV

	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Fatalf("Failed to load session keys: %v", err)
	}
	sessionStore := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)

	render := renderer.New()
	validate := services.NewValidator()

	fabricRepo := repositories.NewFabricRepository(db)
	variantRepo := repositories.NewVariantRepository(db)
	userRepo := repositories.NewUserRepository(db)
	txManager := repositories.NewTxManager(db)

	fabricSvc := services.NewFabricService(txManager, fabricRepo, variantRepo, validate)

	catalogHandler := handlers.NewCatalogHandler(render, fabricSvc)
	authHandler := handlers.NewAuthHandler(render, userRepo, sessionStore)
	uploadHandler := handlers.NewUploadHandler(render, env)
	adminHandler := admin.NewAdminHandler(render, fabricSvc)

	router := mux.NewRouter()
	router.Use(middlewares.LoggingMiddleware)
	router.Use(middlewares.SessionUserMiddleware(sessionStore))

	router.PathPrefix(env.UploadURL + "/").Handler(
		http.StripPrefix(env.UploadURL+"/", http.FileServer(http.Dir(env.UploadDir))))

	router.HandleFunc("/", catalogHandler.GetCatalogPage).Methods("GET")
	router.HandleFunc("/fabrics", catalogHandler.GetCatalogPage).Methods("GET")

	csrfProtect := csrf.Protect(keys.AuthKey, csrf.Secure(false))

	adminRouter := router.PathPrefix("/admin").Subrouter()
	adminRouter.Use(csrfProtect)

	adminRouter.HandleFunc("/login", authHandler.LoginPage).Methods("GET")
	adminRouter.HandleFunc("/login", authHandler.LoginPost).Methods("POST")
	adminRouter.HandleFunc("/logout", authHandler.LogoutPost).Methods("POST")

	staffRouter := adminRouter.NewRoute().Subrouter()
	staffRouter.Use(middlewares.StaffAuthMiddleware(userRepo))

	staffRouter.HandleFunc("/fabrics", adminHandler.GetFabricsPage).Methods("GET")
	staffRouter.HandleFunc("/fabrics/add", adminHandler.AddFabricPage).Methods("GET")
	staffRouter.HandleFunc("/fabrics/add", adminHandler.AddFabricPost).Methods("POST")
	staffRouter.HandleFunc("/fabrics/edit/{id}", adminHandler.EditFabricPage).Methods("GET")
	staffRouter.HandleFunc("/fabrics/edit/{id}", adminHandler.EditFabricPost).Methods("POST")
	staffRouter.HandleFunc("/fabrics/delete/{id}", adminHandler.DeleteFabricPost).Methods("POST")
	staffRouter.HandleFunc("/fabrics/{id}/variants", adminHandler.ManageVariantsPost).Methods("POST")

	uploadRouter := adminRouter.NewRoute().Subrouter()
	uploadRouter.Use(middlewares.UploadGateMiddleware(userRepo))
	uploadRouter.HandleFunc("/upload", uploadHandler.UploadPost).Methods("POST")

	return router
}
