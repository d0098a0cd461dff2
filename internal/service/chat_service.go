package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/hiyoko/dailystamp/internal/error_values"
	"github.com/hiyoko/dailystamp/internal/repository"
	"github.com/hiyoko/dailystamp/pkg/entity"
)

type ChatService struct {
	profiles  ProfileServiceI
	convsRepo repository.ConversationsRepositoryI
	completer ChatCompleterI
}

func NewChatService(profiles ProfileServiceI, convsRepo repository.ConversationsRepositoryI, completer ChatCompleterI) *ChatService {
	if profiles == nil || convsRepo == nil || completer == nil {
		log.Fatal("on chat service provided nil dependencies")
	}
	return &ChatService{
		profiles:  profiles,
		convsRepo: convsRepo,
		completer: completer,
	}
}

// BuildContext extracts the persona state the guide character needs from
// the profile.
func BuildContext(p *entity.Profile) entity.PersonaContext {
	return entity.PersonaContext{
		CharacterName:   p.CharacterName,
		Stage:           p.CurrentStage,
		ConsecutiveDays: p.ConsecutiveDaysBrushed,
		TotalDays:       p.TotalDaysBrushed,
	}
}

func personaPrompt(persona entity.PersonaContext) string {
	return fmt.Sprintf(`あなたは子供向けの優しいガイドキャラクター「%s」です。
現在のステージ: %s
連続歯磨き日数: %d日
累計歯磨き日数: %d日

以下のルールに従って会話してください：
1. 子供にとって親しみやすく、優しい口調で話す
2. 歯磨きを褒めたり、励ましたりする
3. 短く、分かりやすい言葉を使う
4. キャラクターの成長段階に応じた特徴を表現する
5. 日本語で応答する`,
		persona.CharacterName,
		persona.Stage,
		persona.ConsecutiveDays,
		persona.TotalDays,
	)
}

// Chat sends the user's message to the upstream collaborator with the
// persona prompt and appends the exchange to the log. Upstream failure
// surfaces as ErrChatUnavailable and writes nothing; it is never retried
// here. No profile lock is held around the round-trip.
func (cs *ChatService) Chat(ctx context.Context, uid uuid.UUID, message string) (*ChatResult, error) {
	profile, err := cs.profiles.GetProfile(ctx, uid)
	if err != nil {
		return nil, errors.New("getting profile for chat error: " + err.Error())
	}
	persona := BuildContext(profile)
	reply, err := cs.completer.Complete(ctx, personaPrompt(persona), message)
	if err != nil {
		return nil, errors.Join(errorvalues.ErrChatUnavailable, err)
	}
	err = cs.convsRepo.Create(ctx, &entity.Conversation{
		UserID:       uid,
		RequestText:  message,
		ResponseText: reply,
	})
	if err != nil {
		return nil, errors.New("saving conversation error: " + err.Error())
	}
	return &ChatResult{
		Response: reply,
		Stage:    profile.CurrentStage,
	}, nil
}
