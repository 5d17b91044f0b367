package database

import (
	"database/sql"
	"log"

	"gabkut-schola/app/ledger"
)

// RunMigrations ensures all tables, indexes and reference data exist.
// Every statement is idempotent so the function can run on each boot.
func RunMigrations(db *sql.DB) error {
	tables := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			phone VARCHAR(20),
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(50) UNIQUE NOT NULL,
			description TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS user_roles (
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			role_id UUID NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
			PRIMARY KEY (user_id, role_id)
		)`,
		`CREATE TABLE IF NOT EXISTS classes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) UNIQUE NOT NULL,
			code VARCHAR(20) UNIQUE NOT NULL,
			level VARCHAR(50),
			frais_inscription NUMERIC(12,2) DEFAULT 0,
			frais_mensuel NUMERIC(12,2) DEFAULT 0,
			titulaire_id UUID REFERENCES users(id),
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			matricule VARCHAR(50) UNIQUE NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			gender VARCHAR(10),
			date_of_birth DATE,
			class_id UUID NOT NULL REFERENCES classes(id),
			parent_name VARCHAR(255),
			parent_phone VARCHAR(20),
			school_year VARCHAR(9) NOT NULL,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS payments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			amount NUMERIC(12,2) NOT NULL,
			month VARCHAR(20) NOT NULL,
			school_year VARCHAR(9) NOT NULL,
			payment_method VARCHAR(50),
			reference VARCHAR(100),
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			payment_date TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
			recorded_by UUID REFERENCES users(id),
			validated_at TIMESTAMP WITH TIME ZONE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) UNIQUE NOT NULL,
			account_number VARCHAR(10),
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			category_id UUID NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
			title VARCHAR(255) NOT NULL,
			amount NUMERIC(12,2) NOT NULL,
			currency VARCHAR(3) DEFAULT 'CDF' NOT NULL,
			date DATE NOT NULL,
			notes TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS accounting_entries (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			date TIMESTAMP WITH TIME ZONE NOT NULL,
			label TEXT NOT NULL,
			operation_type VARCHAR(30) NOT NULL DEFAULT 'manuelle',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS accounting_lines (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			entry_id UUID NOT NULL REFERENCES accounting_entries(id) ON DELETE CASCADE,
			account_number VARCHAR(10) NOT NULL,
			account_label TEXT,
			sense VARCHAR(6) NOT NULL,
			amount NUMERIC(14,2) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS budget_lines (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			year INT NOT NULL,
			school_year VARCHAR(9) NOT NULL,
			month INT NOT NULL,
			type VARCHAR(20) NOT NULL,
			category VARCHAR(255) NOT NULL,
			planned_amount NUMERIC(12,2) DEFAULT 0,
			actual_amount NUMERIC(12,2) DEFAULT 0,
			account_prefixes TEXT[] DEFAULT '{}',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			UNIQUE (type, year, school_year, category, month)
		)`,
		`CREATE TABLE IF NOT EXISTS chart_of_accounts (
			number VARCHAR(10) PRIMARY KEY,
			label TEXT NOT NULL
		)`,
	}

	for _, q := range tables {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating tables: %v", err)
			return err
		}
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_students_class_id ON students(class_id)`,
		`CREATE INDEX IF NOT EXISTS idx_students_deleted_at ON students(deleted_at)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_student_id ON payments(student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_status ON payments(status)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_payment_date ON payments(payment_date)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_category_id ON expenses(category_id)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_date ON accounting_entries(date)`,
		`CREATE INDEX IF NOT EXISTS idx_lines_entry_id ON accounting_lines(entry_id)`,
		`CREATE INDEX IF NOT EXISTS idx_lines_account_number ON accounting_lines(account_number)`,
		`CREATE INDEX IF NOT EXISTS idx_budget_lines_year_month ON budget_lines(year, month)`,
	}

	for _, m := range indexes {
		if _, err := db.Exec(m); err != nil {
			log.Printf("Error running migration: %v", err)
			// Continue as some might be duplicate index errors depending on PG version
		}
	}

	seeds := []string{
		`INSERT INTO roles (name, description) VALUES ('admin', 'Administrateur') ON CONFLICT (name) DO NOTHING`,
		`INSERT INTO roles (name, description) VALUES ('comptable', 'Comptable') ON CONFLICT (name) DO NOTHING`,
		`INSERT INTO roles (name, description) VALUES ('secretaire', 'Secrétaire') ON CONFLICT (name) DO NOTHING`,
		`INSERT INTO roles (name, description) VALUES ('directeur', 'Directeur') ON CONFLICT (name) DO NOTHING`,
		`INSERT INTO categories (name, account_number, is_active) VALUES ('Salaires', '661', true) ON CONFLICT (name) DO NOTHING`,
		`INSERT INTO categories (name, account_number, is_active) VALUES ('Fournitures', '601', true) ON CONFLICT (name) DO NOTHING`,
	}

	for _, s := range seeds {
		if _, err := db.Exec(s); err != nil {
			log.Printf("Error seeding data: %v", err)
		}
	}

	return seedChartOfAccounts(db)
}

// seedChartOfAccounts loads the reference chart into the database so label
// lookups survive entries posted with unknown accounts.
func seedChartOfAccounts(db *sql.DB) error {
	for _, a := range ledger.DefaultChart().All() {
		_, err := db.Exec(
			`INSERT INTO chart_of_accounts (number, label) VALUES ($1, $2) ON CONFLICT (number) DO NOTHING`,
			a.Number, a.Label,
		)
		if err != nil {
			log.Printf("Error seeding chart of accounts %s: %v", a.Number, err)
			return err
		}
	}
	return nil
}
