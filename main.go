package main

import (
	"log"
	"net/http"
	"os"

	"github.com/partsbay/catalog-api/app/cmd"
	"github.com/partsbay/catalog-api/app/configs"
	"github.com/partsbay/catalog-api/app/routes"
	"github.com/partsbay/catalog-api/app/utils/sessions"
)

func main() {

	configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Fatal("Session keys failed to load:", err)
	}
	sessions.InitStore(keys.AuthKey, keys.EncKey)
	log.Println("✅ Session store initialized.")

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)

	}
	log.Println("✅ Database connected.")

	router := routes.NewRouter(db)

	server := http.Server{
		Addr:    configs.LoadENV.Port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Println("failed to connecting to the server")
	}

}
