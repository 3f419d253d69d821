package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with the permission catalog, profile defaults and sample users for development.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlxDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		if clearData {
			for _, table := range []string{
				"user_permission_overrides", "profile_permissions", "permissions",
				"user_activities", "user_logins", "inquiry_witnesses",
				"commission_members", "inquiries", "processes",
				"misconduct_types", "employees", "users",
			} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear table %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		seedPermissions(db)
		seedProfileDefaults(db)
		seedUsers(db, cfg.Security.BCryptCost)
		seedMisconductTypes(db)

		fmt.Println("Seeding finished")
	},
}

var permissionCatalog = []struct {
	Name string
	Desc string
}{
	{"admin", "administrador completo"},
	{"view_processes", "Pode visualizar processos próprios"},
	{"view_all_processes", "Pode visualizar todos os processos"},
	{"create_processes", "Pode registrar desvios de conduta"},
	{"finalize_processes", "Pode finalizar processos"},
	{"manage_inquiries", "Pode instaurar sindicâncias"},
	{"generate_documents", "Pode gerar documentos disciplinares"},
	{"send_reports", "Pode enviar relatórios e documentos por e-mail"},
	{"manage_users", "Pode gerenciar usuários e permissões"},
	{"import_employees", "Pode importar a base de colaboradores"},
}

var profileDefaults = map[string][]string{
	"administrador": {"admin"},
	"juridico": {
		"view_processes", "view_all_processes", "create_processes",
		"finalize_processes", "manage_inquiries", "generate_documents", "send_reports",
	},
	"gestor":      {"view_processes", "create_processes", "generate_documents"},
	"funcionario": {"view_processes"},
}

func seedPermissions(db *gorm.DB) {
	for _, p := range permissionCatalog {
		var pid int64
		row := db.Raw("SELECT id FROM permissions WHERE name = ?", p.Name).Row()
		if err := row.Scan(&pid); err != nil {
			if err := db.Exec("INSERT INTO permissions (name, description, created_at) VALUES (?, ?, now())", p.Name, p.Desc).Error; err != nil {
				log.Fatalf("failed to insert permission %s: %v", p.Name, err)
			}
			fmt.Printf("Seeded permission: %s\n", p.Name)
		}
	}
}

func seedProfileDefaults(db *gorm.DB) {
	for profile, perms := range profileDefaults {
		for _, permName := range perms {
			var pid int64
			if err := db.Raw("SELECT id FROM permissions WHERE name = ?", permName).Row().Scan(&pid); err != nil {
				log.Fatalf("permission not found %s: %v", permName, err)
			}

			var exists int
			if err := db.Raw("SELECT 1 FROM profile_permissions WHERE profile = ? AND permission_id = ?", profile, pid).Row().Scan(&exists); err == nil {
				continue
			}

			if err := db.Exec("INSERT INTO profile_permissions (profile, permission_id, created_at) VALUES (?, ?, now())", profile, pid).Error; err != nil {
				log.Fatalf("failed to map permission %s to profile %s: %v", permName, profile, err)
			}
		}
		fmt.Printf("Seeded profile defaults: %s\n", profile)
	}
}

func seedUsers(db *gorm.DB, bcryptCost int) {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	hash, _ := bcrypt.GenerateFromPassword([]byte("senha-forte"), bcryptCost)

	users := []struct {
		Email      string
		Name       string
		Profile    string
		Department string
	}{
		{"admin@empresa.com.br", "Administrador", "administrador", "TI"},
		{"juridico@empresa.com.br", "Setor Jurídico", "juridico", "Jurídico"},
		{"gestor@empresa.com.br", "Gestor de Área", "gestor", "Operações"},
	}

	for _, u := range users {
		var exists int
		if err := db.Raw("SELECT 1 FROM users WHERE email = ?", u.Email).Row().Scan(&exists); err == nil {
			fmt.Printf("User already exists: %s\n", u.Email)
			continue
		}

		err := db.Exec(
			"INSERT INTO users (email, name, password_hash, profile, department, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, true, now(), now())",
			u.Email, u.Name, string(hash), u.Profile, u.Department,
		).Error
		if err != nil {
			log.Fatalf("failed to insert user %s: %v", u.Email, err)
		}
		fmt.Printf("Seeded user: %s (%s)\n", u.Email, u.Profile)
	}
}

func seedMisconductTypes(db *gorm.DB) {
	types := []struct {
		Name           string
		Desc           string
		Classification string
		CLTClause      string
	}{
		{"Atraso reiterado", "Atrasos frequentes sem justificativa", "Leve", "Art. 482, alínea e, da CLT"},
		{"Abandono de posto", "Ausência do posto de trabalho sem autorização", "Media", "Art. 482, alínea i, da CLT"},
		{"Insubordinação", "Descumprimento de ordem direta da chefia", "Grave", "Art. 482, alínea h, da CLT"},
		{"Agressão física", "Ofensas físicas no ambiente de trabalho", "Gravissima", "Art. 482, alínea j, da CLT"},
		{"Violação de segurança", "Descumprimento de normas de segurança do trabalho", "Grave", "Art. 158 da CLT"},
	}

	for _, t := range types {
		var exists int
		if err := db.Raw("SELECT 1 FROM misconduct_types WHERE name = ?", t.Name).Row().Scan(&exists); err == nil {
			continue
		}

		err := db.Exec(
			"INSERT INTO misconduct_types (name, description, default_classification, clt_clause, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, true, now(), now())",
			t.Name, t.Desc, t.Classification, t.CLTClause,
		).Error
		if err != nil {
			log.Fatalf("failed to insert misconduct type %s: %v", t.Name, err)
		}
		fmt.Printf("Seeded misconduct type: %s\n", t.Name)
	}
}
