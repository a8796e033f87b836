package core

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"loady/config"
	"loady/enums"
	"loady/models"
	"loady/util"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	defaultAudioTitle     = "TikTok Audio"
	defaultAudioPerformer = "Original Sound"
)

type ItemStatus int

const (
	ItemSent ItemStatus = iota
	ItemSkipped
	ItemFailed
)

// ItemResult records what happened to one media item. failures are
// data, not control flow: the batch always runs to the end.
type ItemResult struct {
	Index  int
	Status ItemStatus
	Err    error
}

type RelayOptions struct {
	MaxFileSize int64
	SendDelay   time.Duration
	Client      *http.Client
}

// GetRelayOptions fills missing fields from the loaded config. a nil
// options value means "use the configured defaults", including the
// pacing delay; callers passing explicit options keep their delay,
// so tests can inject zero.
func GetRelayOptions(options *RelayOptions) *RelayOptions {
	if options == nil {
		options = &RelayOptions{
			SendDelay: config.Env.SendDelay,
		}
	}
	if options.MaxFileSize <= 0 {
		options.MaxFileSize = config.Env.MaxFileSize
	}
	if options.Client == nil {
		options.Client = util.GetFetchSession()
	}
	return options
}

// Relay fetches every resolved item in order and forwards it to the
// chat with a type-matched send. items are processed strictly one
// after another, each successful send followed by a pacing delay.
func Relay(
	ctx context.Context,
	transport Transport,
	chatID int64,
	extractor *models.Extractor,
	items []*models.MediaItem,
	options *RelayOptions,
) ([]ItemResult, error) {
	if len(items) == 0 {
		return nil, util.ErrNoMediaFound
	}
	options = GetRelayOptions(options)

	sendText(transport, chatID, fmt.Sprintf(
		"found %d item(s). starting download...",
		len(items),
	))

	results := make([]ItemResult, 0, len(items))
	for index, item := range items {
		result := relayItem(
			ctx, transport, chatID,
			extractor, item, index, options,
		)
		switch result.Status {
		case ItemSkipped:
			zap.S().Warnf(
				"%s: media %d exceeds size limit, skipping",
				extractor.CodeName, index+1,
			)
			sendText(transport, chatID, fmt.Sprintf(
				"media %d exceeds the %s limit",
				index+1,
				humanize.IBytes(uint64(options.MaxFileSize)),
			))
		case ItemFailed:
			zap.S().Errorf(
				"%s: media %d: %v",
				extractor.CodeName, index+1, result.Err,
			)
			sendText(transport, chatID, fmt.Sprintf(
				"failed to download media %d",
				index+1,
			))
		case ItemSent:
			if options.SendDelay > 0 {
				// courtesy pacing for the telegram api
				time.Sleep(options.SendDelay)
			}
		}
		results = append(results, result)
	}

	sendText(transport, chatID, "download complete!")
	return results, nil
}

// status messages are best effort: a failed notice must not take
// the rest of the batch down with it.
func sendText(transport Transport, chatID int64, text string) {
	if err := transport.SendText(chatID, text); err != nil {
		zap.S().Warnf("failed to send status message: %v", err)
	}
}

func relayItem(
	ctx context.Context,
	transport Transport,
	chatID int64,
	extractor *models.Extractor,
	item *models.MediaItem,
	index int,
	options *RelayOptions,
) ItemResult {
	if err := transport.SendChatAction(chatID, uploadAction(item.Type)); err != nil {
		zap.S().Debugf("failed to send chat action: %v", err)
	}

	data, err := util.DownloadInMemory(
		ctx,
		options.Client,
		item.URL,
		extractor.Referer,
		options.MaxFileSize,
	)
	if err != nil {
		if errors.Is(err, util.ErrFileTooLarge) {
			return ItemResult{Index: index, Status: ItemSkipped, Err: err}
		}
		return ItemResult{
			Index:  index,
			Status: ItemFailed,
			Err:    errors.Wrap(err, "fetch failed"),
		}
	}

	switch item.Type {
	case enums.MediaTypeVideo:
		err = transport.SendVideo(chatID, data)
	case enums.MediaTypePhoto:
		err = transport.SendPhoto(chatID, data)
	case enums.MediaTypeAudio:
		title := item.Title.ValueOrZero()
		if title == "" {
			title = defaultAudioTitle
		}
		performer := item.Performer.ValueOrZero()
		if performer == "" {
			performer = defaultAudioPerformer
		}
		err = transport.SendAudio(chatID, data, title, performer)
	default:
		err = errors.Errorf("unknown media type: %s", item.Type)
	}
	if err != nil {
		return ItemResult{
			Index:  index,
			Status: ItemFailed,
			Err:    errors.Wrap(err, "forward failed"),
		}
	}
	return ItemResult{Index: index, Status: ItemSent}
}

func uploadAction(mediaType enums.MediaType) string {
	switch mediaType {
	case enums.MediaTypeVideo:
		return "upload_video"
	case enums.MediaTypeAudio:
		return "upload_audio"
	case enums.MediaTypePhoto:
		return "upload_photo"
	default:
		return "upload_document"
	}
}
