package classes

import (
	"database/sql"

	"gabkut-schola/app/models"
)

func GetAllClasses(db *sql.DB) ([]*models.Class, error) {
	query := `SELECT c.id, c.name, c.code, COALESCE(c.level, ''), c.frais_inscription, c.frais_mensuel,
			  c.titulaire_id, c.is_active, c.created_at, c.updated_at,
			  COUNT(s.id) FILTER (WHERE s.deleted_at IS NULL AND s.is_active = true)
			  FROM classes c
			  LEFT JOIN students s ON s.class_id = c.id
			  WHERE c.deleted_at IS NULL
			  GROUP BY c.id
			  ORDER BY c.code ASC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	classes := []*models.Class{}
	for rows.Next() {
		cl := &models.Class{}
		var titulaireID sql.NullString
		err := rows.Scan(
			&cl.ID, &cl.Name, &cl.Code, &cl.Level, &cl.FraisInscription, &cl.FraisMensuel,
			&titulaireID, &cl.IsActive, &cl.CreatedAt, &cl.UpdatedAt, &cl.StudentCount,
		)
		if err != nil {
			return nil, err
		}
		if titulaireID.Valid {
			cl.TitulaireID = &titulaireID.String
		}
		classes = append(classes, cl)
	}
	return classes, nil
}

func GetClassByID(db *sql.DB, id string) (*models.Class, error) {
	query := `SELECT c.id, c.name, c.code, COALESCE(c.level, ''), c.frais_inscription, c.frais_mensuel,
			  c.titulaire_id, c.is_active, c.created_at, c.updated_at,
			  (SELECT COUNT(*) FROM students s WHERE s.class_id = c.id AND s.deleted_at IS NULL AND s.is_active = true)
			  FROM classes c
			  WHERE c.id = $1 AND c.deleted_at IS NULL`

	cl := &models.Class{}
	var titulaireID sql.NullString
	err := db.QueryRow(query, id).Scan(
		&cl.ID, &cl.Name, &cl.Code, &cl.Level, &cl.FraisInscription, &cl.FraisMensuel,
		&titulaireID, &cl.IsActive, &cl.CreatedAt, &cl.UpdatedAt, &cl.StudentCount,
	)
	if err != nil {
		return nil, err
	}
	if titulaireID.Valid {
		cl.TitulaireID = &titulaireID.String
	}
	return cl, nil
}

func CreateClass(db *sql.DB, cl *models.Class) error {
	query := `INSERT INTO classes (name, code, level, frais_inscription, frais_mensuel, titulaire_id, is_active)
			  VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, true)
			  RETURNING id, created_at, updated_at`

	var titulaireID interface{}
	if cl.TitulaireID != nil {
		titulaireID = *cl.TitulaireID
	}
	return db.QueryRow(query,
		cl.Name, cl.Code, cl.Level, cl.FraisInscription, cl.FraisMensuel, titulaireID,
	).Scan(&cl.ID, &cl.CreatedAt, &cl.UpdatedAt)
}

func UpdateClass(db *sql.DB, cl *models.Class) error {
	query := `UPDATE classes
			  SET name = $1, code = $2, level = NULLIF($3, ''), frais_inscription = $4,
			      frais_mensuel = $5, titulaire_id = $6, is_active = $7, updated_at = NOW()
			  WHERE id = $8 AND deleted_at IS NULL`

	var titulaireID interface{}
	if cl.TitulaireID != nil {
		titulaireID = *cl.TitulaireID
	}
	result, err := db.Exec(query,
		cl.Name, cl.Code, cl.Level, cl.FraisInscription, cl.FraisMensuel, titulaireID,
		cl.IsActive, cl.ID,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteClass(db *sql.DB, id string) error {
	_, err := db.Exec(`UPDATE classes SET deleted_at = NOW(), is_active = false WHERE id = $1`, id)
	return err
}
