package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"gabkut-schola/app/config"
	"gabkut-schola/app/database"
	"gabkut-schola/app/models"
)

func main() {
	firstName := flag.String("first-name", "", "user first name")
	lastName := flag.String("last-name", "", "user last name")
	email := flag.String("email", "", "user email")
	password := flag.String("password", "", "user password (min 8 characters)")
	roles := flag.String("roles", "admin", "comma-separated roles (admin, comptable, secretaire, directeur)")
	flag.Parse()

	if *firstName == "" || *lastName == "" || *email == "" || len(*password) < 8 {
		fmt.Println("Usage: add_user -first-name X -last-name Y -email Z -password P [-roles admin,comptable]")
		os.Exit(1)
	}

	if err := config.Load(); err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	db := config.GetDB()

	if err := database.RunMigrations(db); err != nil {
		fmt.Printf("Failed to run migrations: %v\n", err)
		os.Exit(1)
	}

	user := &models.User{
		FirstName: *firstName,
		LastName:  *lastName,
		Email:     *email,
		Password:  *password,
	}

	roleNames := []string{}
	for _, r := range strings.Split(*roles, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roleNames = append(roleNames, r)
		}
	}

	if err := database.CreateUser(db, user, roleNames...); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User created successfully: %s %s (%s) with roles %s\n",
		user.FirstName, user.LastName, user.Email, strings.Join(roleNames, ", "))
}
