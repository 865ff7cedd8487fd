package controller

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/joshdurbin/url-shortener-client/internal/controller/mocks"
	"github.com/joshdurbin/url-shortener-client/internal/domain"
	"github.com/joshdurbin/url-shortener-client/internal/feedback"
	"github.com/joshdurbin/url-shortener-client/internal/metrics"
)

func TestSubmissionController_Activate(t *testing.T) {
	page := newFakePage()
	c := NewSubmissionController(page, &mocks.Shortener{})

	c.Activate()

	assert.True(t, page.focused)
	assert.Equal(t, domain.Idle(), c.State())
}

func TestSubmissionController_OnSubmit(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		setupMocks    func(*mocks.Shortener)
		expectedState domain.UIState
		expectedErr   interface{}
	}{
		{
			name:  "successful submission",
			input: "https://example.com/page",
			setupMocks: func(m *mocks.Shortener) {
				m.On("Shorten", mock.Anything, "https://example.com/page").
					Return(&domain.ShortenResponse{ShortURL: "https://s.example/abc"}, nil).Once()
			},
			expectedState: domain.ResultState("https://s.example/abc"),
		},
		{
			name:  "input is trimmed",
			input: "  https://example.com/page \n",
			setupMocks: func(m *mocks.Shortener) {
				m.On("Shorten", mock.Anything, "https://example.com/page").
					Return(&domain.ShortenResponse{ShortURL: "https://s.example/abc"}, nil).Once()
			},
			expectedState: domain.ResultState("https://s.example/abc"),
		},
		{
			name:          "not a url",
			input:         "not a url",
			setupMocks:    func(m *mocks.Shortener) {},
			expectedState: domain.ErrorState("Пожалуйста, введите корректный URL"),
			expectedErr:   &domain.ValidationError{},
		},
		{
			name:          "blank input",
			input:         "   ",
			setupMocks:    func(m *mocks.Shortener) {},
			expectedState: domain.ErrorState("Пожалуйста, введите корректный URL"),
			expectedErr:   &domain.ValidationError{},
		},
		{
			name:  "endpoint error message",
			input: "https://example.com/page",
			setupMocks: func(m *mocks.Shortener) {
				m.On("Shorten", mock.Anything, "https://example.com/page").
					Return(nil, &domain.RemoteError{StatusCode: http.StatusTooManyRequests, Message: "rate limited"}).Once()
			},
			expectedState: domain.ErrorState("rate limited"),
			expectedErr:   &domain.RemoteError{},
		},
		{
			name:  "endpoint unreachable",
			input: "https://example.com/page",
			setupMocks: func(m *mocks.Shortener) {
				m.On("Shorten", mock.Anything, "https://example.com/page").
					Return(nil, &domain.RemoteError{Err: errors.New("connection refused")}).Once()
			},
			expectedState: domain.ErrorState("Произошла ошибка"),
			expectedErr:   &domain.RemoteError{},
		},
		{
			name:  "untyped transport error",
			input: "https://example.com/page",
			setupMocks: func(m *mocks.Shortener) {
				m.On("Shorten", mock.Anything, "https://example.com/page").
					Return(nil, assert.AnError).Once()
			},
			expectedState: domain.ErrorState("Произошла ошибка"),
			expectedErr:   &domain.RemoteError{},
		},
		{
			name:  "success without short URL",
			input: "https://example.com/page",
			setupMocks: func(m *mocks.Shortener) {
				m.On("Shorten", mock.Anything, "https://example.com/page").
					Return(&domain.ShortenResponse{}, nil).Once()
			},
			expectedState: domain.ErrorState("Произошла ошибка"),
			expectedErr:   &domain.RemoteError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shortener := &mocks.Shortener{}
			tt.setupMocks(shortener)
			page := newFakePage()
			c := NewSubmissionController(page, shortener, WithSubmissionMetrics(metrics.New()))

			err := c.OnSubmit(context.Background(), tt.input)

			assert.Equal(t, tt.expectedState, c.State())
			assert.False(t, page.loading, "busy indicator must be cleared")
			shortener.AssertExpectations(t)

			switch tt.expectedErr.(type) {
			case nil:
				require.NoError(t, err)
				assert.Equal(t, tt.expectedState.ShortURL, page.shortURL)
				assert.False(t, page.formVisible)
				assert.True(t, page.resultVisible)
				assert.False(t, page.errorVisible)
				assert.Equal(t, []bool{true, false}, page.loadingCalls)
			case *domain.ValidationError:
				var validationErr *domain.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tt.expectedState.Message, err.Error())
				shortener.AssertNotCalled(t, "Shorten", mock.Anything, mock.Anything)
				assert.Empty(t, page.loadingCalls)
				assert.True(t, page.errorVisible)
				assert.Equal(t, tt.expectedState.Message, page.errorText)
				assert.False(t, page.resultVisible)
			case *domain.RemoteError:
				var remoteErr *domain.RemoteError
				require.ErrorAs(t, err, &remoteErr)
				assert.Equal(t, tt.expectedState.Message, remoteErr.Message)
				assert.Equal(t, []bool{true, false}, page.loadingCalls)
				assert.True(t, page.errorVisible)
				assert.Equal(t, tt.expectedState.Message, page.errorText)
				assert.False(t, page.resultVisible)
				assert.True(t, page.formVisible)
			}
		})
	}
}

func TestSubmissionController_RemoteErrorKeepsStatus(t *testing.T) {
	shortener := &mocks.Shortener{}
	shortener.On("Shorten", mock.Anything, "https://example.com/page").
		Return(nil, &domain.RemoteError{StatusCode: http.StatusTooManyRequests, Message: "rate limited"})
	c := NewSubmissionController(newFakePage(), shortener)

	err := c.OnSubmit(context.Background(), "https://example.com/page")

	var remoteErr *domain.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusTooManyRequests, remoteErr.StatusCode)
}

func TestSubmissionController_ResubmitAfterError(t *testing.T) {
	shortener := &mocks.Shortener{}
	shortener.On("Shorten", mock.Anything, "https://example.com/page").
		Return(&domain.ShortenResponse{ShortURL: "https://s.example/abc"}, nil).Once()
	page := newFakePage()
	c := NewSubmissionController(page, shortener)

	require.Error(t, c.OnSubmit(context.Background(), "example.com/page"))
	assert.Equal(t, domain.PhaseError, c.State().Phase)
	assert.True(t, page.errorVisible)

	require.NoError(t, c.OnSubmit(context.Background(), "https://example.com/page"))
	assert.Equal(t, domain.ResultState("https://s.example/abc"), c.State())
	assert.False(t, page.errorVisible, "a new submission clears the previous error")
	assert.True(t, page.resultVisible)
	shortener.AssertNumberOfCalls(t, "Shorten", 1)
}

func TestSubmissionController_OnCopyRequested(t *testing.T) {
	t.Run("copies the short URL", func(t *testing.T) {
		shortener := &mocks.Shortener{}
		shortener.On("Shorten", mock.Anything, "https://example.com/page").
			Return(&domain.ShortenResponse{ShortURL: "https://s.example/abc"}, nil)
		writer := &mocks.ClipboardWriter{}
		writer.On("WriteText", mock.Anything, "https://s.example/abc").Return(nil)

		page := newFakePage()
		copier := NewCopier(writer, nil, feedback.New(page), nil)
		c := NewSubmissionController(page, shortener, WithSubmissionCopier(copier))
		require.NoError(t, c.OnSubmit(context.Background(), "https://example.com/page"))

		require.NoError(t, c.OnCopyRequested(context.Background()))

		assert.True(t, page.selected)
		assert.True(t, page.Copied())
		writer.AssertExpectations(t)
		copier.Feedback().Stop()
	})

	t.Run("nothing to copy before a result", func(t *testing.T) {
		page := newFakePage()
		copier := NewCopier(&mocks.ClipboardWriter{}, nil, feedback.New(page), nil)
		c := NewSubmissionController(page, &mocks.Shortener{}, WithSubmissionCopier(copier))

		assert.Error(t, c.OnCopyRequested(context.Background()))
		assert.False(t, page.Copied())
	})

	t.Run("no copier", func(t *testing.T) {
		c := NewSubmissionController(newFakePage(), &mocks.Shortener{})
		assert.ErrorIs(t, c.OnCopyRequested(context.Background()), ErrNoClipboard)
	})
}
