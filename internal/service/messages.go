package service

import "fmt"

// Client-facing messages. Clients of the original service match on these.
const (
	MsgQuestionCreated  = "Вопрос создан"
	MsgQuestionDeleted  = "Вопрос успешно удален вместе с ответами"
	MsgQuestionNotFound = "Вопрос не найден"
	MsgAnswerCreated    = "Ответ добавлен"
	MsgAnswerNotFound   = "Ответ не найден"
)

func answerDeletedMessage(id uint) string {
	return fmt.Sprintf("Ответ %d удалён", id)
}
