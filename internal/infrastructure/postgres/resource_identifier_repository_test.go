package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/na2na-p/atelier/internal/domain"
	"github.com/na2na-p/atelier/internal/infrastructure/postgres"
	"github.com/pashagolub/pgxmock/v4"
)

func TestResourceIdentifierRepository_FindIDBySlug(t *testing.T) {
	type args struct {
		resourceType domain.ResourceType
		slug         string
	}
	tests := []struct {
		name      string
		args      args
		mockSetup func(mock pgxmock.PgxPoolIface)
		want      string
		wantErr   error
	}{
		{
			name: "正常系: artworksはslug列で検索する",
			args: args{resourceType: domain.ResourceTypeArtworks, slug: "sunset"},
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT id::text FROM artworks WHERE slug = \$1`).
					WithArgs("sunset").
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("0b7c6a1e-1111-4c1d-9a55-6f0a2b3c4d5e"))
			},
			want: "0b7c6a1e-1111-4c1d-9a55-6f0a2b3c4d5e",
		},
		{
			name: "正常系: seriesはslug列で検索する",
			args: args{resourceType: domain.ResourceTypeSeries, slug: "winter"},
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM series WHERE slug = \$1`).
					WithArgs("winter").
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("s-1"))
			},
			want: "s-1",
		},
		{
			name: "正常系: artifactsはnameをハイフン区切りとして比較する",
			args: args{resourceType: domain.ResourceTypeArtifacts, slug: "old-brush"},
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM artifacts WHERE lower\(name\) = replace\(lower\(\$1\), '-', ' '\)`).
					WithArgs("old-brush").
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("a-9"))
			},
			want: "a-9",
		},
		{
			name: "異常系: 見つからない場合はErrNotFound",
			args: args{resourceType: domain.ResourceTypeArtworks, slug: "ghost"},
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM artworks`).
					WithArgs("ghost").
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name:      "異常系: editorはslug検索に対応していない",
			args:      args{resourceType: domain.ResourceTypeEditor, slug: "inline"},
			mockSetup: func(mock pgxmock.PgxPoolIface) {},
			wantErr:   postgres.ErrUnsupportedSlugTable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			if err != nil {
				t.Fatalf("モックプールの作成に失敗しました: %v", err)
			}
			defer mock.Close()

			tt.mockSetup(mock)

			repo := postgres.NewResourceIdentifierRepository(mock)
			got, err := repo.FindIDBySlug(context.Background(), tt.args.resourceType, tt.args.slug)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("FindIDBySlug() error = %v, want %v", err, tt.wantErr)
				}
			} else {
				if err != nil {
					t.Fatalf("FindIDBySlug() unexpected error: %v", err)
				}
				if got != tt.want {
					t.Errorf("FindIDBySlug() = %q, want %q", got, tt.want)
				}
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("mock expectations not met: %v", err)
			}
		})
	}
}
