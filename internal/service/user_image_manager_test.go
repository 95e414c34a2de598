// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-avatar-sync/internal/events"
	"github.com/MKhiriev/go-avatar-sync/internal/logger"
	"github.com/MKhiriev/go-avatar-sync/internal/mock"
	"github.com/MKhiriev/go-avatar-sync/internal/store"
	"github.com/MKhiriev/go-avatar-sync/models"
)

type queueDispatcher struct {
	tasks []func()
}

func (q *queueDispatcher) Post(fn func()) {
	q.tasks = append(q.tasks, fn)
}

func (q *queueDispatcher) drain() {
	for len(q.tasks) > 0 {
		fn := q.tasks[0]
		q.tasks = q.tasks[1:]
		fn()
	}
}

type imageChangeCounter struct {
	users []string
}

func (c *imageChangeCounter) Observe(e events.Event) {
	c.users = append(c.users, e.UserID)
}

func newTestImageManager(t *testing.T, defaultIndex int) (UserImageManager, *mock.MockUserRepository, *queueDispatcher, *imageChangeCounter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	dispatcher := &queueDispatcher{}
	bus := events.NewService()
	counter := &imageChangeCounter{}
	bus.Add(counter, events.TypeUserImageChanged)

	return NewUserImageManager(repo, dispatcher, bus, defaultIndex, logger.Nop()), repo, dispatcher, counter
}

func TestUserImageManager_LoadUser_Existing(t *testing.T) {
	m, repo, _, _ := newTestImageManager(t, 0)
	repo.EXPECT().GetUser(gomock.Any(), testUser).
		Return(models.User{UserID: testUser, ImageIndex: 12}, nil)

	user, err := m.LoadUser(context.Background(), testUser)

	require.NoError(t, err)
	assert.Equal(t, 12, user.ImageIndex)
	assert.Equal(t, 12, m.ImageIndex(testUser))
}

func TestUserImageManager_LoadUser_CreatesWithDefault(t *testing.T) {
	m, repo, _, _ := newTestImageManager(t, 4)
	repo.EXPECT().GetUser(gomock.Any(), testUser).Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().SaveUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) error {
			assert.Equal(t, testUser, u.UserID)
			assert.Equal(t, 4, u.ImageIndex)
			assert.False(t, u.UpdatedAt.IsZero())
			return nil
		})

	user, err := m.LoadUser(context.Background(), testUser)

	require.NoError(t, err)
	assert.Equal(t, 4, user.ImageIndex)
}

func TestUserImageManager_LoadUser_UnsupportedDefaultFallsBack(t *testing.T) {
	m, repo, _, _ := newTestImageManager(t, models.DefaultImagesCount)
	repo.EXPECT().GetUser(gomock.Any(), testUser).Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(nil)

	user, err := m.LoadUser(context.Background(), testUser)

	require.NoError(t, err)
	assert.Equal(t, models.FirstDefaultImageIndex, user.ImageIndex)
}

func TestUserImageManager_LoadUser_Errors(t *testing.T) {
	m, repo, _, _ := newTestImageManager(t, 0)

	_, err := m.LoadUser(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidUserID)

	dbErr := errors.New("disk I/O error")
	repo.EXPECT().GetUser(gomock.Any(), testUser).Return(models.User{}, dbErr)
	_, err = m.LoadUser(context.Background(), testUser)
	assert.ErrorIs(t, err, dbErr)
	assert.Equal(t, models.InvalidImageIndex, m.ImageIndex(testUser))
}

func TestUserImageManager_SaveRunsOnDispatcher(t *testing.T) {
	m, repo, dispatcher, counter := newTestImageManager(t, 0)
	repo.EXPECT().GetUser(gomock.Any(), testUser).Return(models.User{UserID: testUser, ImageIndex: 1}, nil)
	_, err := m.LoadUser(context.Background(), testUser)
	require.NoError(t, err)

	m.SaveUserDefaultImageIndex(testUser, 7)

	assert.Equal(t, 1, m.ImageIndex(testUser), "nothing changes before the task runs")
	assert.Empty(t, counter.users)

	repo.EXPECT().SaveUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) error {
			assert.Equal(t, 7, u.ImageIndex)
			return nil
		})
	dispatcher.drain()

	assert.Equal(t, 7, m.ImageIndex(testUser))
	assert.Equal(t, []string{testUser}, counter.users)
}

func TestUserImageManager_SaveProfileImage(t *testing.T) {
	m, repo, dispatcher, counter := newTestImageManager(t, 0)
	repo.EXPECT().GetUser(gomock.Any(), testUser).Return(models.User{UserID: testUser, ImageIndex: 1}, nil)
	_, err := m.LoadUser(context.Background(), testUser)
	require.NoError(t, err)

	repo.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(nil)
	m.SaveUserImageFromProfileImage(testUser)
	dispatcher.drain()

	assert.Equal(t, models.ProfileImageIndex, m.ImageIndex(testUser))
	assert.Len(t, counter.users, 1)
}

func TestUserImageManager_SaveFailureKeepsIndex(t *testing.T) {
	m, repo, dispatcher, counter := newTestImageManager(t, 0)
	repo.EXPECT().GetUser(gomock.Any(), testUser).Return(models.User{UserID: testUser, ImageIndex: 1}, nil)
	_, err := m.LoadUser(context.Background(), testUser)
	require.NoError(t, err)

	repo.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(errors.New("database is locked"))
	m.SaveUserDefaultImageIndex(testUser, 9)
	dispatcher.drain()

	assert.Equal(t, 1, m.ImageIndex(testUser))
	assert.Empty(t, counter.users)
}

func TestUserImageManager_SaveForUnknownUserIsDropped(t *testing.T) {
	m, _, dispatcher, counter := newTestImageManager(t, 0)

	m.SaveUserDefaultImageIndex("ghost", 3)
	dispatcher.drain()

	assert.Equal(t, models.InvalidImageIndex, m.ImageIndex("ghost"))
	assert.Empty(t, counter.users)
}
