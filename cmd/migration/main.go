package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hugohenrick/credit-manager/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	// Criar conexão com o banco
	db, err := database.NewPostgresDB()
	if err != nil {
		log.Fatalf("Erro ao conectar com o banco de dados: %v", err)
	}

	// Executar as migrações
	if err := runMigrations(db); err != nil {
		log.Fatalf("Erro ao executar migrações: %v", err)
	}

	log.Println("Migrações executadas com sucesso!")
}

func runMigrations(db *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	conn, err := db.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("erro ao obter conexão: %w", err)
	}
	defer conn.Release()

	// Verificar se a tabela de migrações existe
	if err := createMigrationsTable(ctx, conn); err != nil {
		return fmt.Errorf("erro ao criar tabela de migrações: %w", err)
	}

	// Verificar última migração executada
	lastMigration, err := getLastMigration(ctx, conn)
	if err != nil {
		return fmt.Errorf("erro ao verificar última migração: %w", err)
	}

	log.Printf("Última migração executada: %s", lastMigration)

	// Lista de migrações
	migrations := []migration{
		{
			version: "001_create_tenants",
			up: `
				-- Tabela de tenants (contas de negócio)
				CREATE TABLE IF NOT EXISTS tenants (
					id UUID PRIMARY KEY,
					name VARCHAR(255) NOT NULL,
					document VARCHAR(20) UNIQUE NOT NULL,
					email VARCHAR(255),
					phone VARCHAR(20),
					status VARCHAR(20) NOT NULL,
					plan VARCHAR(20) NOT NULL,
					max_users INTEGER NOT NULL,
					max_clients INTEGER NOT NULL,
					max_invoices_per_month INTEGER NOT NULL,
					max_products INTEGER NOT NULL,
					created_at TIMESTAMP NOT NULL,
					updated_at TIMESTAMP NOT NULL,
					deleted_at TIMESTAMP
				);

				-- Índices
				CREATE INDEX IF NOT EXISTS idx_tenants_status ON tenants(status);
				CREATE INDEX IF NOT EXISTS idx_tenants_document ON tenants(document);
			`,
		},
		{
			version: "002_create_clients",
			up: `
				-- Tabela de clientes
				CREATE TABLE IF NOT EXISTS clients (
					id UUID PRIMARY KEY,
					tenant_id UUID NOT NULL REFERENCES tenants(id),
					name VARCHAR(255) NOT NULL,
					phone_number VARCHAR(20) NOT NULL,
					email VARCHAR(255),
					status VARCHAR(20) NOT NULL,
					total_balance NUMERIC(14,2) NOT NULL DEFAULT 0,
					notes TEXT,
					created_at TIMESTAMP NOT NULL,
					updated_at TIMESTAMP NOT NULL,
					UNIQUE (tenant_id, phone_number)
				);

				-- Índices
				CREATE INDEX IF NOT EXISTS idx_clients_tenant_id ON clients(tenant_id);
				CREATE INDEX IF NOT EXISTS idx_clients_phone_number ON clients(phone_number);
			`,
		},
		{
			version: "003_create_products",
			up: `
				-- Tabela de produtos
				CREATE TABLE IF NOT EXISTS products (
					id UUID PRIMARY KEY,
					tenant_id UUID NOT NULL REFERENCES tenants(id),
					name VARCHAR(255) NOT NULL,
					description TEXT,
					price NUMERIC(14,2) NOT NULL,
					created_at TIMESTAMP NOT NULL,
					updated_at TIMESTAMP NOT NULL
				);

				-- Índices
				CREATE INDEX IF NOT EXISTS idx_products_tenant_id ON products(tenant_id);
			`,
		},
		{
			version: "004_create_invoices_transactions",
			up: `
				-- Tabela de faturas
				CREATE TABLE IF NOT EXISTS invoices (
					id UUID PRIMARY KEY,
					tenant_id UUID NOT NULL REFERENCES tenants(id),
					client_id UUID NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
					product_id UUID REFERENCES products(id),
					number VARCHAR(50) NOT NULL,
					amount NUMERIC(14,2) NOT NULL,
					status VARCHAR(20) NOT NULL,
					due_date TIMESTAMP,
					notes TEXT,
					created_at TIMESTAMP NOT NULL,
					updated_at TIMESTAMP NOT NULL
				);

				-- Tabela de transações (ledger imutável)
				CREATE TABLE IF NOT EXISTS transactions (
					id UUID PRIMARY KEY,
					tenant_id UUID NOT NULL REFERENCES tenants(id),
					client_id UUID NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
					invoice_id UUID REFERENCES invoices(id) ON DELETE CASCADE,
					type VARCHAR(10) NOT NULL,
					amount NUMERIC(14,2) NOT NULL,
					date TIMESTAMP NOT NULL,
					notes TEXT,
					created_at TIMESTAMP NOT NULL
				);

				-- Índices
				CREATE INDEX IF NOT EXISTS idx_invoices_tenant_id ON invoices(tenant_id);
				CREATE INDEX IF NOT EXISTS idx_invoices_client_id ON invoices(client_id);
				CREATE INDEX IF NOT EXISTS idx_invoices_status ON invoices(status);
				CREATE INDEX IF NOT EXISTS idx_transactions_tenant_id ON transactions(tenant_id);
				CREATE INDEX IF NOT EXISTS idx_transactions_client_id ON transactions(client_id);
				CREATE INDEX IF NOT EXISTS idx_transactions_invoice_id ON transactions(invoice_id);
				CREATE INDEX IF NOT EXISTS idx_transactions_type ON transactions(type);
			`,
		},
		{
			version: "005_create_notifications",
			up: `
				-- Tabela de notificações internas
				CREATE TABLE IF NOT EXISTS notifications (
					id UUID PRIMARY KEY,
					tenant_id UUID NOT NULL REFERENCES tenants(id),
					user_id UUID NOT NULL,
					title VARCHAR(255),
					message TEXT NOT NULL,
					link VARCHAR(255),
					read BOOLEAN NOT NULL DEFAULT false,
					created_at TIMESTAMP NOT NULL
				);

				-- Índices
				CREATE INDEX IF NOT EXISTS idx_notifications_tenant_user ON notifications(tenant_id, user_id);
				CREATE INDEX IF NOT EXISTS idx_notifications_read ON notifications(read);
			`,
		},
		{
			version: "006_create_users",
			up: `
				-- Tabela de identidades de login
				CREATE TABLE IF NOT EXISTS users (
					id UUID PRIMARY KEY,
					tenant_id UUID NOT NULL REFERENCES tenants(id),
					client_id UUID REFERENCES clients(id) ON DELETE CASCADE,
					name VARCHAR(255) NOT NULL,
					email VARCHAR(255) UNIQUE NOT NULL,
					password VARCHAR(255) NOT NULL,
					role VARCHAR(20) NOT NULL,
					status VARCHAR(20) NOT NULL,
					last_login_at TIMESTAMP,
					created_at TIMESTAMP NOT NULL,
					updated_at TIMESTAMP NOT NULL
				);

				-- Tabela de perfis
				CREATE TABLE IF NOT EXISTS profiles (
					user_id UUID PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
					tenant_id UUID NOT NULL REFERENCES tenants(id),
					name VARCHAR(255) NOT NULL,
					phone_number VARCHAR(20),
					created_at TIMESTAMP NOT NULL,
					updated_at TIMESTAMP NOT NULL
				);

				-- Tabela de papéis
				CREATE TABLE IF NOT EXISTS user_roles (
					user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
					tenant_id UUID NOT NULL REFERENCES tenants(id),
					role VARCHAR(20) NOT NULL,
					created_at TIMESTAMP NOT NULL,
					PRIMARY KEY (user_id, tenant_id)
				);

				-- Índices
				CREATE INDEX IF NOT EXISTS idx_users_tenant_id ON users(tenant_id);
				CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);
			`,
		},
		{
			version: "007_create_platform_admin",
			up: `
				-- Tabela de operadores da plataforma
				CREATE TABLE IF NOT EXISTS super_admins (
					id UUID PRIMARY KEY,
					user_id UUID UNIQUE NOT NULL,
					name VARCHAR(255),
					email VARCHAR(255),
					active BOOLEAN NOT NULL DEFAULT true,
					created_at TIMESTAMP NOT NULL,
					updated_at TIMESTAMP NOT NULL
				);

				-- Tabela de auditoria das ações administrativas
				CREATE TABLE IF NOT EXISTS platform_audit_logs (
					id UUID PRIMARY KEY,
					super_admin_id UUID NOT NULL REFERENCES super_admins(id),
					action VARCHAR(100) NOT NULL,
					target_id VARCHAR(100),
					details TEXT,
					created_at TIMESTAMP NOT NULL
				);

				-- Tabela de feature flags por tenant
				CREATE TABLE IF NOT EXISTS tenant_feature_flags (
					tenant_id UUID NOT NULL REFERENCES tenants(id),
					feature VARCHAR(100) NOT NULL,
					enabled BOOLEAN NOT NULL DEFAULT false,
					updated_at TIMESTAMP NOT NULL,
					PRIMARY KEY (tenant_id, feature)
				);

				-- Índices
				CREATE INDEX IF NOT EXISTS idx_platform_audit_logs_created_at ON platform_audit_logs(created_at);
			`,
		},
	}

	// Executar migrações pendentes
	for _, m := range migrations {
		if m.version <= lastMigration {
			log.Printf("Pulando migração %s (já executada)", m.version)
			continue
		}

		log.Printf("Executando migração %s", m.version)

		// Iniciar transação
		tx, err := conn.Begin(ctx)
		if err != nil {
			return fmt.Errorf("erro ao iniciar transação: %w", err)
		}

		// Executar migração
		_, err = tx.Exec(ctx, m.up)
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				log.Printf("Erro ao fazer rollback: %v", rbErr)
			}
			return fmt.Errorf("erro ao executar migração %s: %w", m.version, err)
		}

		// Registrar migração executada
		_, err = tx.Exec(ctx,
			"INSERT INTO migrations (version, executed_at) VALUES ($1, $2)",
			m.version, time.Now())
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				log.Printf("Erro ao fazer rollback: %v", rbErr)
			}
			return fmt.Errorf("erro ao registrar migração %s: %w", m.version, err)
		}

		// Commit
		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("erro ao fazer commit da migração %s: %w", m.version, err)
		}

		log.Printf("Migração %s executada com sucesso", m.version)
	}

	return nil
}

func createMigrationsTable(ctx context.Context, conn *pgxpool.Conn) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version VARCHAR(100) PRIMARY KEY,
			executed_at TIMESTAMP NOT NULL
		)
	`
	_, err := conn.Exec(ctx, query)
	return err
}

func getLastMigration(ctx context.Context, conn *pgxpool.Conn) (string, error) {
	var version string
	err := conn.QueryRow(ctx,
		"SELECT version FROM migrations ORDER BY executed_at DESC LIMIT 1").Scan(&version)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return version, nil
}

type migration struct {
	version string
	up      string
}
