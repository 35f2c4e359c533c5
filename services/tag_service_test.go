package services

import (
	"testing"

	"bahasa-indah-nusantara/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeTagRepo struct {
	tags    map[string]models.Tag
	nextID  uint
	creates int
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{tags: make(map[string]models.Tag), nextID: 1}
}

func (f *fakeTagRepo) Create(tag *models.Tag) error {
	tag.ID = f.nextID
	f.nextID++
	f.creates++
	f.tags[tag.Name] = *tag
	return nil
}

func (f *fakeTagRepo) GetByName(name string) (*models.Tag, error) {
	tag, ok := f.tags[name]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &tag, nil
}

func (f *fakeTagRepo) GetByID(id uint) (*models.Tag, error) {
	for _, tag := range f.tags {
		if tag.ID == id {
			t := tag
			return &t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTagRepo) GetAll() ([]models.Tag, error) {
	var tags []models.Tag
	for _, tag := range f.tags {
		tags = append(tags, tag)
	}
	return tags, nil
}

func TestCreateTagMenolakDuplikat(t *testing.T) {
	svc := NewTagService(newFakeTagRepo())

	_, err := svc.CreateTag("legenda")
	require.NoError(t, err)

	_, err = svc.CreateTag("legenda")
	assert.EqualError(t, err, "tag sudah ada")

	_, err = svc.CreateTag("   ")
	assert.EqualError(t, err, "nama tag tidak boleh kosong")
}

func TestResolveNamesMembuatYangBelumAda(t *testing.T) {
	repo := newFakeTagRepo()
	repo.Create(&models.Tag{Name: "legenda"})
	repo.creates = 0
	svc := NewTagService(repo)

	tags, err := svc.ResolveNames([]string{"legenda", "pantun"})

	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, 1, repo.creates, "hanya pantun yang dibuat baru")
}

func TestResolveNamesDedupDanNamaKosong(t *testing.T) {
	repo := newFakeTagRepo()
	svc := NewTagService(repo)

	tags, err := svc.ResolveNames([]string{"pantun", "Pantun", "  ", "pantun"})

	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "pantun", tags[0].Name)
	assert.Equal(t, 1, repo.creates)
}
