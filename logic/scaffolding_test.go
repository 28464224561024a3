package logic_test

import (
	"go.uber.org/mock/gomock"
	"mention_herald/test/mocks"
)

func setupDummyLogger(mockLogger *mocks.MockILogger) {
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Printf(gomock.Any(), gomock.Any()).AnyTimes()
}

func setupDummyMetrics(mockMetrics *mocks.MockIMetrics, mockObs *mocks.MockIRequestObserver) {
	mockObs.EXPECT().Finish().AnyTimes()
	mockMetrics.EXPECT().StartWebhookRequestIn(gomock.Any()).Return(mockObs).AnyTimes()
	mockMetrics.EXPECT().StartGraphRequestOut(gomock.Any()).Return(mockObs).AnyTimes()
	mockMetrics.EXPECT().MentionDetected(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().EmailSent().AnyTimes()
	mockMetrics.EXPECT().EmailFailed().AnyTimes()
	mockMetrics.EXPECT().GraphRequestFailed().AnyTimes()
	mockMetrics.EXPECT().ServiceStarted().AnyTimes()
	mockMetrics.EXPECT().ConfiguredPages(gomock.Any()).AnyTimes()
}
