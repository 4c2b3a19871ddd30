package fair

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS halls (
		fair_id INT NOT NULL,
		hall_id INT NOT NULL,
		name VARCHAR(64) NOT NULL,
		capacity_m2 INT NOT NULL,
		booked_m2 INT NOT NULL DEFAULT 0,
		PRIMARY KEY (fair_id, hall_id)
	);`,
	`INSERT INTO halls (fair_id, hall_id, name, capacity_m2, booked_m2) VALUES
		(1, 1, 'Hall A', 45, 0),
		(1, 2, 'Hall B', 120, 120),
		(1, 3, 'Hall C', 100, 0)
	ON CONFLICT (fair_id, hall_id) DO NOTHING;`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
