package sector

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq uint64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	id := atomic.AddUint64(&testDBSeq, 1)
	dsn := fmt.Sprintf("file:sector_test_%d?mode=memory&cache=shared", id)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := db.AutoMigrate(&Sector{}); err != nil {
		t.Fatalf("migrate db: %v", err)
	}

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func insertSector(t *testing.T, db *gorm.DB, sec Sector) Sector {
	t.Helper()

	if err := db.Create(&sec).Error; err != nil {
		t.Fatalf("insert sector: %v", err)
	}
	if err := db.Model(&Sector{}).Where("id = ?", sec.ID).
		UpdateColumn("published", sec.Published).
		UpdateColumn("is_template", sec.IsTemplate).Error; err != nil {
		t.Fatalf("set flags: %v", err)
	}
	return sec
}

func TestPartnershipSchema_FallbackChain(t *testing.T) {
	db := newTestDB(t)
	svc := &SectorService{DB: db}

	tmplFields := datatypes.JSON(`[{"id":"org","label_ar":"اسم الجهة","type":"text","required":true}]`)
	ownFields := datatypes.JSON(`[{"id":"own","label_ar":"خاص","type":"textarea","required":false}]`)

	withOwn := insertSector(t, db, Sector{Slug: "energy", NameAr: "الطاقة", Published: true, PartnershipFields: ownFields})
	bare := insertSector(t, db, Sector{Slug: "health", NameAr: "الصحة", Published: true})
	insertSector(t, db, Sector{Slug: "tmpl", NameAr: "قالب", IsTemplate: true, PartnershipFields: tmplFields})

	schema, err := svc.PartnershipSchemaByID(withOwn.ID)
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	if len(schema) != 1 || schema[0].ID != "own" {
		t.Fatalf("schema=%+v want own fields", schema)
	}

	schema, err = svc.PartnershipSchemaByID(bare.ID)
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	if len(schema) != 1 || schema[0].ID != "org" {
		t.Fatalf("schema=%+v want template fields", schema)
	}
}

func TestGetBySlug_HidesDrafts(t *testing.T) {
	db := newTestDB(t)
	svc := &SectorService{DB: db}

	insertSector(t, db, Sector{Slug: "energy", NameAr: "الطاقة", Published: true})
	insertSector(t, db, Sector{Slug: "hidden", NameAr: "مخفي", Published: false})

	if _, err := svc.GetBySlug("energy"); err != nil {
		t.Fatalf("get: %v", err)
	}
	if _, err := svc.GetBySlug("hidden"); err != gorm.ErrRecordNotFound {
		t.Fatalf("err=%v want record not found", err)
	}
}

func TestUpdatePartnershipFields_Verbatim(t *testing.T) {
	db := newTestDB(t)
	svc := &SectorService{DB: db}

	sec := insertSector(t, db, Sector{Slug: "energy", NameAr: "الطاقة"})

	raw := datatypes.JSON(`[{"id":"org","label_ar":"اسم الجهة","type":"text","required":true}]`)
	got, err := svc.UpdatePartnershipFields(sec.ID, raw)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if string(got.PartnershipFields) != string(raw) {
		t.Fatalf("stored %s want %s", got.PartnershipFields, raw)
	}
}
