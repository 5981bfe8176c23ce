package main

import "github.com/Markosdlpz02/Practica4/internal/app"

func main() {
	app.InitDefaultLogger()
	app.MustReadEnv()
	app.MustInitApplicationLogger()

	app.MustConnectMongo()
	defer app.DisconnectMongo()

	app.MustListenAndServeHTTP()
}
