package message

import (
	"time"

	"github.com/woosuta/woosuta-backend/internal/apierror"
	"github.com/woosuta/woosuta-backend/internal/instantevent"
)

var (
	errEventNotFound   = apierror.BadRequest("존재하지 않는 이벤트에 질문을 보내고 있네요 ☠️")
	errMessageNotFound = apierror.BadRequest("존재하지 않는 메시지를 조회 중")
	errReplyNotFound   = apierror.BadRequest("존재하지 않는 댓글입니다.")
	errEventClosed     = apierror.BadRequest("종료된 이벤트에 질문을 보내고 있네요 ☠️")
	errEventLocked     = apierror.BadRequest("잠긴 이벤트에 질문을 보내고 있네요 ☠️")
	errNotOwnerMember  = apierror.Forbidden("권한이 없습니다.")
)

// postGate decides whether a new question may be posted. autoClose is set
// when the question window has lapsed but the event doc still says open:
// the caller must commit closed=true and then surface the error anyway.
func postGate(ev *instantevent.InstantEvent, now time.Time) (autoClose bool, err error) {
	if ev.Closed {
		return false, errEventClosed
	}
	if ev.Locked {
		return false, errEventLocked
	}
	if ev.EndDate != "" {
		end := instantevent.ParseISO(ev.EndDate)
		if !now.Before(end) {
			return true, errEventClosed
		}
	}
	return false, nil
}

// mutationGate guards vote/reaction writes: nothing is accepted once the
// event is closed or locked.
func mutationGate(ev *instantevent.InstantEvent) error {
	if ev.Closed {
		return apierror.BadRequest("종료된 이벤트")
	}
	if ev.Locked {
		return apierror.BadRequest("잠긴 이벤트")
	}
	return nil
}

// replyGate guards reply posting. Locked does not block replies: the
// reply-collection phase runs after the question window under a lock.
func replyGate(ev *instantevent.InstantEvent) error {
	if ev.Closed {
		return apierror.BadRequest("종료된 이벤트 ☠️")
	}
	return nil
}

// toggleReaction flips membership of the (voter, type) pair. Calling it
// twice with the same pair is a no-op overall.
func toggleReaction(reaction []ReactionItem, voter, reactionType string) []ReactionItem {
	out := make([]ReactionItem, 0, len(reaction)+1)
	removed := false
	for _, item := range reaction {
		if item.Voter == voter && item.Type == reactionType {
			removed = true
			continue
		}
		out = append(out, item)
	}
	if !removed {
		out = append(out, ReactionItem{Type: reactionType, Voter: voter})
	}
	return out
}

// toggleVoter flips membership of voter in the legacy voter list. The
// vote counter moves by the caller-requested direction independently of
// the membership change; the two can drift, which matches the legacy
// endpoint this preserves.
func toggleVoter(voter []string, uid string) []string {
	out := make([]string, 0, len(voter)+1)
	removed := false
	for _, v := range voter {
		if v == uid {
			removed = true
			continue
		}
		out = append(out, v)
	}
	if !removed {
		out = append(out, uid)
	}
	return out
}

func voteDelta(isUpvote bool) int {
	if isUpvote {
		return 1
	}
	return -1
}
