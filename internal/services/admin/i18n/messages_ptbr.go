package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.MustParse("pt-BR")

	// Titles
	message.SetString(lang, "title.dashboard", "%s | Painel")
	message.SetString(lang, "title.products", "%s | Produtos")
	message.SetString(lang, "title.categories", "%s | Categorias")
	message.SetString(lang, "title.users", "%s | Usuários")
	message.SetString(lang, "title.orders", "%s | Pedidos")
	message.SetString(lang, "title.giftcards", "%s | Vale-presentes")
	message.SetString(lang, "title.discountkeys", "%s | Chaves de Desconto")
	message.SetString(lang, "title.roles", "%s | Papéis")

	// Navigation
	message.SetString(lang, "nav.dashboard", "Painel")
	message.SetString(lang, "nav.products", "Produtos")
	message.SetString(lang, "nav.categories", "Categorias")
	message.SetString(lang, "nav.users", "Usuários")
	message.SetString(lang, "nav.orders", "Pedidos")
	message.SetString(lang, "nav.gift_cards", "Vale-presentes")
	message.SetString(lang, "nav.discount_keys", "Chaves de Desconto")
	message.SetString(lang, "nav.roles", "Papéis")

	// Shared actions
	message.SetString(lang, "action.toggle", "Alternar")
	message.SetString(lang, "action.delete", "Excluir")
	message.SetString(lang, "action.save", "Salvar")
	message.SetString(lang, "action.apply", "Aplicar")
	message.SetString(lang, "action.revoke", "Revogar")
	message.SetString(lang, "action.assign", "Atribuir")
	message.SetString(lang, "action.remove", "Remover")
	message.SetString(lang, "pagination.next", "Próxima página")
	message.SetString(lang, "status.active", "Ativo")
	message.SetString(lang, "status.inactive", "Inativo")

	// Dashboard
	message.SetString(lang, "dashboard.heading", "Painel")
	message.SetString(lang, "dashboard.products", "Produtos")
	message.SetString(lang, "dashboard.users", "Usuários")
	message.SetString(lang, "dashboard.orders", "Pedidos")
	message.SetString(lang, "dashboard.revenue", "Receita")
	message.SetString(lang, "dashboard.gift_cards_active", "Valor de vale-presentes em aberto")
	message.SetString(lang, "dashboard.gift_cards_total", "Valor de vale-presentes emitidos")

	// Products
	message.SetString(lang, "products.heading", "Produtos")
	message.SetString(lang, "products.new", "Novo produto")
	message.SetString(lang, "products.edit", "Editar produto")
	message.SetString(lang, "products.name", "Nome")
	message.SetString(lang, "products.price", "Preço")
	message.SetString(lang, "products.price_cents", "Preço (centavos)")
	message.SetString(lang, "products.category", "Categoria")
	message.SetString(lang, "products.no_category", "Sem categoria")
	message.SetString(lang, "products.stock", "Estoque")
	message.SetString(lang, "products.status", "Status")
	message.SetString(lang, "products.actions", "Ações")
	message.SetString(lang, "products.active", "Ativo")
	message.SetString(lang, "products.filter", "Filtro, ex. price_cents > 1000 AND is_active = true")
	message.SetString(lang, "products.empty", "Nenhum produto encontrado.")
	message.SetString(lang, "products.created", "Produto criado.")
	message.SetString(lang, "products.updated", "Produto atualizado.")
	message.SetString(lang, "products.deleted", "Produto excluído.")

	// Categories
	message.SetString(lang, "categories.heading", "Categorias")
	message.SetString(lang, "categories.new", "Nova categoria")
	message.SetString(lang, "categories.edit", "Editar categoria")
	message.SetString(lang, "categories.name", "Nome")
	message.SetString(lang, "categories.slug", "Slug")
	message.SetString(lang, "categories.parent", "Categoria pai")
	message.SetString(lang, "categories.root", "Nível superior")
	message.SetString(lang, "categories.sort_order", "Ordem")
	message.SetString(lang, "categories.status", "Status")
	message.SetString(lang, "categories.updated", "Atualizada")
	message.SetString(lang, "categories.actions", "Ações")
	message.SetString(lang, "categories.move", "Mover")
	message.SetString(lang, "categories.empty", "Nenhuma categoria ainda.")
	message.SetString(lang, "categories.created", "Categoria criada.")
	message.SetString(lang, "categories.renamed", "Categoria atualizada.")
	message.SetString(lang, "categories.moved", "Categoria movida.")
	message.SetString(lang, "categories.deleted", "Categoria excluída.")

	// Users
	message.SetString(lang, "users.heading", "Usuários")
	message.SetString(lang, "users.email", "E-mail")
	message.SetString(lang, "users.display_name", "Nome de exibição")
	message.SetString(lang, "users.admin", "Admin")
	message.SetString(lang, "users.admin_yes", "Sim")
	message.SetString(lang, "users.admin_no", "Não")
	message.SetString(lang, "users.created", "Criado")
	message.SetString(lang, "users.empty", "Nenhum usuário encontrado.")
	message.SetString(lang, "users.profile", "Perfil")
	message.SetString(lang, "users.full_name", "Nome completo")
	message.SetString(lang, "users.phone", "Telefone")
	message.SetString(lang, "users.addresses", "Endereços")
	message.SetString(lang, "users.no_addresses", "Nenhum endereço cadastrado.")
	message.SetString(lang, "users.add_address", "Adicionar endereço")
	message.SetString(lang, "users.address_label", "Rótulo")
	message.SetString(lang, "users.street", "Rua")
	message.SetString(lang, "users.city", "Cidade")
	message.SetString(lang, "users.country", "País")
	message.SetString(lang, "users.postal_code", "CEP")
	message.SetString(lang, "users.roles", "Papéis")
	message.SetString(lang, "users.no_roles", "Nenhum papel atribuído.")
	message.SetString(lang, "users.profile_saved", "Perfil salvo.")
	message.SetString(lang, "users.address_saved", "Endereço salvo.")
	message.SetString(lang, "users.role_assigned", "Papel atribuído.")
	message.SetString(lang, "users.role_removed", "Papel removido.")

	// Orders
	message.SetString(lang, "orders.heading", "Pedidos")
	message.SetString(lang, "orders.id", "Pedido")
	message.SetString(lang, "orders.user", "Cliente")
	message.SetString(lang, "orders.total", "Total")
	message.SetString(lang, "orders.status", "Status")
	message.SetString(lang, "orders.date", "Data")
	message.SetString(lang, "orders.filter", "Filtro, ex. status = \"paid\"")
	message.SetString(lang, "orders.empty", "Nenhum pedido encontrado.")
	message.SetString(lang, "orders.revenue", "Receita: %s")
	message.SetString(lang, "orders.detail_heading", "Pedido %s")

	// Gift cards
	message.SetString(lang, "giftcards.heading", "Vale-presentes")
	message.SetString(lang, "giftcards.new", "Emitir vale-presente")
	message.SetString(lang, "giftcards.issue", "Emitir")
	message.SetString(lang, "giftcards.code", "Código")
	message.SetString(lang, "giftcards.amount", "Valor")
	message.SetString(lang, "giftcards.amount_cents", "Valor (centavos)")
	message.SetString(lang, "giftcards.recipient", "Destinatário")
	message.SetString(lang, "giftcards.message", "Mensagem")
	message.SetString(lang, "giftcards.state", "Estado")
	message.SetString(lang, "giftcards.state_active", "Ativo")
	message.SetString(lang, "giftcards.state_used", "Usado")
	message.SetString(lang, "giftcards.state_expired", "Expirado")
	message.SetString(lang, "giftcards.expires", "Expira")
	message.SetString(lang, "giftcards.created", "Emitido")
	message.SetString(lang, "giftcards.empty", "Nenhum vale-presente emitido.")
	message.SetString(lang, "giftcards.summary_active", "Valor em aberto")
	message.SetString(lang, "giftcards.summary_total", "Valor emitido")
	message.SetString(lang, "giftcards.issued", "Vale-presente %s emitido.")
	message.SetString(lang, "giftcards.transactions", "Resgates")
	message.SetString(lang, "giftcards.no_transactions", "Nenhum resgate ainda.")
	message.SetString(lang, "giftcards.order", "Pedido")
	message.SetString(lang, "giftcards.redeemed_at", "Resgatado")
	message.SetString(lang, "giftcards.redeem", "Resgatar")
	message.SetString(lang, "giftcards.redeemed", "Vale-presente resgatado.")

	// Discount keys
	message.SetString(lang, "discountkeys.heading", "Chaves de Desconto")
	message.SetString(lang, "discountkeys.generate", "Gerar")
	message.SetString(lang, "discountkeys.code", "Código")
	message.SetString(lang, "discountkeys.tier", "Nível")
	message.SetString(lang, "discountkeys.percent", "Desconto")
	message.SetString(lang, "discountkeys.state", "Estado")
	message.SetString(lang, "discountkeys.state_unused", "Não usada")
	message.SetString(lang, "discountkeys.state_used", "Usada por %s")
	message.SetString(lang, "discountkeys.state_revoked", "Revogada")
	message.SetString(lang, "discountkeys.created", "Criada")
	message.SetString(lang, "discountkeys.actions", "Ações")
	message.SetString(lang, "discountkeys.empty", "Nenhuma chave de desconto ainda.")
	message.SetString(lang, "discountkeys.generated", "%d chaves geradas.")
	message.SetString(lang, "discountkeys.revoked", "Chave revogada.")
	message.SetString(lang, "discountkeys.check", "Verificar código")
	message.SetString(lang, "discountkeys.check_valid", "Chave %s válida (%d%% de desconto).")
	message.SetString(lang, "discountkeys.check_used", "Esta chave já foi utilizada.")
	message.SetString(lang, "discountkeys.check_revoked", "Esta chave foi revogada.")
	message.SetString(lang, "discountkeys.check_unknown", "Nenhuma chave corresponde a esse código.")
	message.SetString(lang, "tier.bronze", "Bronze")
	message.SetString(lang, "tier.silver", "Prata")
	message.SetString(lang, "tier.gold", "Ouro")

	// Roles
	message.SetString(lang, "roles.heading", "Papéis")
	message.SetString(lang, "roles.new", "Novo papel")
	message.SetString(lang, "roles.edit", "Editar papel")
	message.SetString(lang, "roles.name", "Nome")
	message.SetString(lang, "roles.level", "Nível")
	message.SetString(lang, "roles.permissions", "Permissões")
	message.SetString(lang, "roles.assigned", "Atribuições")
	message.SetString(lang, "roles.actions", "Ações")
	message.SetString(lang, "roles.resource", "Recurso")
	message.SetString(lang, "roles.access_none", "Nenhum")
	message.SetString(lang, "roles.access_read", "Leitura")
	message.SetString(lang, "roles.access_write", "Escrita")
	message.SetString(lang, "roles.empty", "Nenhum papel definido.")
	message.SetString(lang, "roles.created", "Papel criado.")
	message.SetString(lang, "roles.updated", "Papel atualizado.")
	message.SetString(lang, "roles.deleted", "Papel excluído.")
	message.SetString(lang, "resource.products", "Produtos")
	message.SetString(lang, "resource.categories", "Categorias")
	message.SetString(lang, "resource.users", "Usuários")
	message.SetString(lang, "resource.orders", "Pedidos")
	message.SetString(lang, "resource.gift_cards", "Vale-presentes")
	message.SetString(lang, "resource.discount_keys", "Chaves de Desconto")
	message.SetString(lang, "resource.roles", "Papéis")
}
