package main

import (
	"log"

	"accountservice/api"
	db "accountservice/db/sqlc"
	"accountservice/util"
)

func main() {
	config, err := util.LoadConfig(".")

	if err != nil {
		log.Fatalf("Could not load environment configuration: %v", err)
	}

	conn, err := db.Open(config.DBDriver, config.DBSource)

	if err != nil {
		log.Fatalf("ERROR: could not connect to the Database: %v", err)
	}

	store := db.NewStore(conn)

	server, err := api.NewServer(config, store)

	if err != nil {
		log.Fatalf("Could not create server: %v", err)
	}

	if err = server.Start(config.ServerAddress); err != nil {
		log.Fatalf("Could not start server: %v", err)
	}
}
