package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 评论按 id 升序返回，楼层号不随新评论变化
func TestListForPostOldestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewCommentStore(db)

	mock.ExpectQuery(`SELECT \* FROM "comments" WHERE post_id = \$1 ORDER BY id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "user_id", "content"}).
			AddRow(1, 1, 2, "沙发").
			AddRow(2, 1, 3, "板凳").
			AddRow(3, 1, 2, "地板"))
	// Preload User
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(2, "bob").AddRow(3, "carol"))

	comments, err := s.ListForPost(1)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, uint(1), comments[0].ID)
	assert.Equal(t, uint(2), comments[1].ID)
	assert.Equal(t, uint(3), comments[2].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountForPost(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewCommentStore(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "comments" WHERE post_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := s.CountForPost(1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}
