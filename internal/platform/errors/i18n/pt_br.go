package i18n

func init() {
	RegisterCatalog("pt-BR", NewCatalog("pt-BR", map[Code]string{
		CodeProductNameEmpty:         "O nome do produto é obrigatório.",
		CodeProductInvalidPrice:      "O preço do produto deve ser maior que zero.",
		CodeProductInvalidStock:      "O estoque do produto não pode ser negativo.",
		CodeProductUnknownCategory:   "A categoria selecionada não existe.",
		CodeCategoryNameEmpty:        "O nome da categoria é obrigatório.",
		CodeCategorySlugEmpty:        "O slug da categoria é obrigatório.",
		CodeCategoryCycle:            "Uma categoria não pode ser movida para uma de suas próprias subcategorias.",
		CodeCategoryUnknownParent:    "A categoria pai selecionada não existe.",
		CodeUserEmptyID:              "O ID do usuário é obrigatório.",
		CodeUserInvalidEmail:         "Um endereço de email válido é obrigatório.",
		CodeProfileNameEmpty:         "O nome completo é obrigatório.",
		CodeAddressStreetEmpty:       "O endereço é obrigatório.",
		CodeGiftCardInvalidAmount:    "O valor do vale-presente deve ser maior que zero.",
		CodeGiftCardInvalidRecipient: "Um email de destinatário válido é obrigatório.",
		CodeGiftCardExpired:          "Este vale-presente expirou em {{.ExpiresAt}}.",
		CodeGiftCardAlreadyUsed:      "Este vale-presente já foi utilizado.",
		CodeGiftCardUnknownCode:      "Nenhum vale-presente corresponde a este código.",
		CodeDiscountInvalidTier:      "Nível de desconto desconhecido {{.Tier}}.",
		CodeDiscountKeyUsed:          "Esta chave de desconto já foi utilizada.",
		CodeDiscountKeyRevoked:       "Esta chave de desconto foi revogada.",
		CodeDiscountUnknownKey:       "Nenhuma chave de desconto corresponde a este código.",
		CodeDiscountInvalidCount:     "A quantidade de chaves deve estar entre 1 e {{.Max}}.",
		CodeRoleNameEmpty:            "O nome do cargo é obrigatório.",
		CodeRoleInvalidLevel:         "O nível do cargo deve ser maior que zero.",
		CodeRoleHasAssignments:       "Este cargo ainda está atribuído a {{.Count}} administrador(es) e não pode ser excluído.",
		CodeRoleLevelTooLow:          "O nível do seu cargo não permite gerenciar este cargo.",
		CodeRolePermissionDenied:     "Você não tem permissão para executar esta ação.",
		CodeSessionInvalid:           "Sua sessão é inválida. Entre novamente.",
		CodeSessionExpired:           "Sua sessão expirou. Entre novamente.",
		CodeNotFound:                 "O registro solicitado não foi encontrado.",
		CodeAlreadyExists:            "Já existe um registro com este identificador.",
		CodeUnknown:                  "A operação falhou. Tente novamente.",
	}))
}
