package partner

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
	dsn := fmt.Sprintf("file:partner_test_%d?mode=memory&cache=shared", id)

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

	if err := db.AutoMigrate(&PartnerCategory{}); err != nil {
		t.Fatalf("migrate db: %v", err)
	}

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func insertCategory(t *testing.T, db *gorm.DB, cat PartnerCategory) PartnerCategory {
	t.Helper()

	if err := db.Create(&cat).Error; err != nil {
		t.Fatalf("insert category: %v", err)
	}
	if err := db.Model(&PartnerCategory{}).Where("id = ?", cat.ID).
		UpdateColumn("published", cat.Published).Error; err != nil {
		t.Fatalf("set published: %v", err)
	}
	return cat
}

func TestApplicationSchema(t *testing.T) {
	db := newTestDB(t)
	svc := &PartnerService{DB: db}

	fields := datatypes.JSON(`[{"id":"company","label_ar":"اسم الشركة","type":"text","required":true}]`)
	withFields := insertCategory(t, db, PartnerCategory{Slug: "sponsor", NameAr: "راعي", Published: true, Fields: fields})
	bare := insertCategory(t, db, PartnerCategory{Slug: "exhibitor", NameAr: "عارض", Published: true})

	schema, err := svc.ApplicationSchemaByID(withFields.ID)
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	if len(schema) != 1 || schema[0].ID != "company" {
		t.Fatalf("schema=%+v want company field", schema)
	}

	schema, err = svc.ApplicationSchemaByID(bare.ID)
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	if len(schema) != 0 {
		t.Fatalf("schema=%+v want empty", schema)
	}

	if _, err := svc.ApplicationSchemaByID(999); err != gorm.ErrRecordNotFound {
		t.Fatalf("err=%v want record not found", err)
	}
}

func TestUpdateFields_Verbatim(t *testing.T) {
	db := newTestDB(t)
	svc := &PartnerService{DB: db}

	cat := insertCategory(t, db, PartnerCategory{Slug: "sponsor", NameAr: "راعي"})

	raw := datatypes.JSON(`[{"id":"company","label_ar":"اسم الشركة","type":"text","required":true}]`)
	got, err := svc.UpdateFields(cat.ID, raw)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if string(got.Fields) != string(raw) {
		t.Fatalf("stored %s want %s", got.Fields, raw)
	}

	if _, err := svc.UpdateFields(cat.ID, datatypes.JSON(`{"not":"an array"}`)); err == nil {
		t.Fatal("expected malformed config to be rejected")
	}
}

func TestUploadLogo(t *testing.T) {
	db := newTestDB(t)
	svc := &PartnerService{DB: db, Bucket: "jaz-media"}

	cat := insertCategory(t, db, PartnerCategory{Slug: "Sponsor Gold", NameAr: "راعي ذهبي"})

	var gotObject string
	orig := uploadImage
	uploadImage = func(base64Data, bucket, object string) (string, int64, error) {
		gotObject = object
		return "gs://" + bucket + "/" + object, 42, nil
	}
	t.Cleanup(func() { uploadImage = orig })

	got, err := svc.UploadLogo(cat.ID, &UploadLogoRequest{
		Image:    "data:image/png;base64,aGVsbG8=",
		Filename: "logo.png",
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	wantObject := "partners/sponsor_gold/logo.png"
	if gotObject != wantObject {
		t.Fatalf("object=%q want %q", gotObject, wantObject)
	}
	wantURL := "https://storage.googleapis.com/jaz-media/" + wantObject
	if got.LogoURL != wantURL {
		t.Fatalf("logo url=%q want %q", got.LogoURL, wantURL)
	}
}

func TestUploadLogo_NoBucket(t *testing.T) {
	db := newTestDB(t)
	svc := &PartnerService{DB: db}

	cat := insertCategory(t, db, PartnerCategory{Slug: "sponsor", NameAr: "راعي"})

	if _, err := svc.UploadLogo(cat.ID, &UploadLogoRequest{Image: "x"}); err == nil {
		t.Fatal("expected missing bucket error")
	}
}
