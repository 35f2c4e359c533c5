package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"bahasa-indah-nusantara/models"

	"gorm.io/gorm"
)

type fakeIzinRepo struct {
	records map[string]models.IzinKonten
	lookups int
}

func newFakeIzinRepo() *fakeIzinRepo {
	return &fakeIzinRepo{records: make(map[string]models.IzinKonten)}
}

func (f *fakeIzinRepo) set(userID uint, tipe models.TipeKonten, buat, edit, setujui bool) {
	f.records[fmt.Sprintf("%d:%s", userID, tipe)] = models.IzinKonten{
		UserID:       userID,
		TipeKonten:   tipe,
		BolehBuat:    buat,
		BolehEdit:    edit,
		BolehSetujui: setujui,
	}
}

func (f *fakeIzinRepo) GetByUserAndTipe(userID uint, tipe models.TipeKonten) (*models.IzinKonten, error) {
	f.lookups++
	izin, ok := f.records[fmt.Sprintf("%d:%s", userID, tipe)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &izin, nil
}

func (f *fakeIzinRepo) GetByUser(userID uint) ([]models.IzinKonten, error) {
	var result []models.IzinKonten
	for _, izin := range f.records {
		if izin.UserID == userID {
			result = append(result, izin)
		}
	}
	return result, nil
}

type fakeKontenRepo struct {
	nextID   uint
	saved    []models.Kontenable
	deleted  []models.Kontenable
	tags     map[uint][]models.Tag
	saveErr  error
	replaced int
}

func newFakeKontenRepo() *fakeKontenRepo {
	return &fakeKontenRepo{nextID: 1, tags: make(map[uint][]models.Tag)}
}

func (f *fakeKontenRepo) Create(item models.Kontenable) error {
	item.Meta().ID = f.nextID
	item.Meta().CreatedAt = time.Now()
	f.nextID++
	return nil
}

func (f *fakeKontenRepo) Save(item models.Kontenable) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, item)
	return nil
}

func (f *fakeKontenRepo) Delete(item models.Kontenable) error {
	f.deleted = append(f.deleted, item)
	return nil
}

func (f *fakeKontenRepo) GetByID(item models.Kontenable, id uint) error {
	return gorm.ErrRecordNotFound
}

func (f *fakeKontenRepo) List(dest interface{}, model models.Kontenable, params models.KontenListParams, publicOnly bool) (int64, error) {
	return 0, nil
}

func (f *fakeKontenRepo) ReplaceTags(item models.Kontenable, tags []models.Tag) error {
	f.replaced++
	f.tags[item.Meta().ID] = tags
	return nil
}

func (f *fakeKontenRepo) UpdateStatus(item models.Kontenable, status models.StatusKonten) error {
	item.Meta().Status = status
	return nil
}

type fakeTagService struct {
	resolveErr error
}

func (f *fakeTagService) CreateTag(name string) (*models.Tag, error) { return nil, nil }
func (f *fakeTagService) GetTags() ([]models.Tag, error)            { return nil, nil }
func (f *fakeTagService) GetTag(id uint) (*models.Tag, error)       { return nil, nil }

func (f *fakeTagService) ResolveNames(names []string) ([]models.Tag, error) {
	if f.resolveErr != nil {
		return nil, f.resolveErr
	}
	tags := make([]models.Tag, 0, len(names))
	for i, name := range names {
		tags = append(tags, models.Tag{ID: uint(i + 1), Name: name})
	}
	return tags, nil
}

type fakeMediaService struct {
	uploadErr error
	uploads   int
	deleted   []string
}

func (f *fakeMediaService) Validate(file *multipart.FileHeader) error {
	return f.uploadErr
}

func (f *fakeMediaService) Upload(ctx context.Context, tipe models.TipeKonten, kontenID uint, file *multipart.FileHeader) (*MediaObject, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	f.uploads++
	key := fmt.Sprintf("media/%s/%d/objek.jpg", tipe, kontenID)
	return &MediaObject{Key: key, URL: "https://contoh.test/" + key}, nil
}

func (f *fakeMediaService) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

type fakeKamusRepo struct {
	existing map[string]int64
}

func newFakeKamusRepo() *fakeKamusRepo {
	return &fakeKamusRepo{existing: make(map[string]int64)}
}

func (f *fakeKamusRepo) CountByKata(kata, bahasaDaerah string) (int64, error) {
	return f.existing[kata+"|"+bahasaDaerah], nil
}

type fakeSuspendRepo struct {
	aktif     map[uint]models.SuspendUser
	dueCount  int64
	expireRan int
}

func newFakeSuspendRepo() *fakeSuspendRepo {
	return &fakeSuspendRepo{aktif: make(map[uint]models.SuspendUser)}
}

func (f *fakeSuspendRepo) GetAktifByUser(userID uint) (*models.SuspendUser, error) {
	suspend, ok := f.aktif[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &suspend, nil
}

func (f *fakeSuspendRepo) ExpireDue(now time.Time) (int64, error) {
	f.expireRan++
	return f.dueCount, nil
}

type fakeUserRepo struct {
	users  map[uint]models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]models.User), nextID: 1}
}

func (f *fakeUserRepo) Create(user *models.User) error {
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByUsername(username string) (*models.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetAll() ([]models.User, error) {
	var users []models.User
	for _, user := range f.users {
		users = append(users, user)
	}
	return users, nil
}
