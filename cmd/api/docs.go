package main

// @title Haversine API
// @version 1.0
// @description Validates free-text "latitude,longitude" pairs and computes the great-circle distance between them.

// @contact.name API Support
// @contact.email support@example.com

// @host localhost:8080
// @BasePath /
