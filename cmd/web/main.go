// @title           InternHub API
// @version         1.0
// @description     REST API биржи стажировок: студенты откликаются на стажировки работодателей.
// @host            localhost:5000
// @BasePath        /api/v1

package main

import "internhub_backend/internal/app"

func main() {
	app.Run()
}
